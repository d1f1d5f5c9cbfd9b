package auth

import (
	"errors"
	"strings"

	"github.com/bizledger/bizledger-be/internal/core/apperr"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AccountMailer sends account lifecycle emails. Implemented by core/email.
type AccountMailer interface {
	SendWelcome(email, name string) error
	SendPasswordReset(email, name, token string) error
}

type Service struct {
	users  UserRepo
	tokens *JWTManager
	mailer AccountMailer
}

func NewService(users UserRepo, tokens *JWTManager, mailer AccountMailer) *Service {
	return &Service{users: users, tokens: tokens, mailer: mailer}
}

// Register creates a login. Portal users must carry a contact id; only the
// seeding path creates admins.
func (s *Service) Register(req RegisterRequest) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, apperr.InvalidRequest("email is required")
	}
	if len(req.Password) < 8 {
		return nil, apperr.InvalidRequest("password must be at least 8 characters")
	}

	if existing, err := s.users.GetByEmail(email); err == nil && existing != nil {
		return nil, apperr.Conflict("user with email %s already exists", email)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = RolePortal
	}
	if role != RoleAdmin && role != RolePortal {
		return nil, apperr.InvalidRequest("role must be admin or portal")
	}
	if role == RolePortal && (req.ContactID == nil || *req.ContactID == "") {
		return nil, apperr.InvalidRequest("portal users require a contact_id")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &User{
		Email:        email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         role,
		ContactID:    req.ContactID,
		IsActive:     true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user registered")

	if s.mailer != nil {
		if err := s.mailer.SendWelcome(user.Email, user.Name); err != nil {
			log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to send welcome email")
		}
	}
	return user, nil
}

func (s *Service) Login(req LoginRequest) (*User, *TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.InvalidRequest("invalid email or password")
		}
		return nil, nil, err
	}
	if !user.IsActive {
		return nil, nil, apperr.Forbidden("account is disabled")
	}
	if !CheckPassword(user.PasswordHash, req.Password) {
		return nil, nil, apperr.InvalidRequest("invalid email or password")
	}

	pair, err := s.tokens.GenerateTokenPair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (s *Service) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, apperr.InvalidRequest("invalid refresh token")
	}
	user, err := s.users.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.InvalidRequest("invalid refresh token")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperr.Forbidden("account is disabled")
	}
	return s.tokens.GenerateTokenPair(user)
}

func (s *Service) GetUser(id string) (*User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) UpdateProfile(userID string, req UpdateProfileRequest) (*User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email != user.Email {
			if existing, err := s.users.GetByEmail(email); err == nil && existing != nil {
				return nil, apperr.Conflict("user with email %s already exists", email)
			} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			user.Email = email
		}
	}
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) ChangePassword(userID string, req ChangePasswordRequest) error {
	user, err := s.GetUser(userID)
	if err != nil {
		return err
	}
	if !CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return apperr.InvalidRequest("current password is incorrect")
	}
	if len(req.NewPassword) < 8 {
		return apperr.InvalidRequest("password must be at least 8 characters")
	}
	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(user)
}

// ForgotPassword emails a reset token. Unknown emails are silently accepted
// so the endpoint does not leak which addresses exist.
func (s *Service) ForgotPassword(email string) error {
	user, err := s.users.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	token, err := s.tokens.GenerateResetToken(user)
	if err != nil {
		return err
	}
	if s.mailer != nil {
		if err := s.mailer.SendPasswordReset(user.Email, user.Name, token); err != nil {
			log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to send password reset email")
		}
	}
	return nil
}

func (s *Service) ResetPassword(req ResetPasswordRequest) error {
	claims, err := s.tokens.ParseResetToken(req.Token)
	if err != nil {
		return apperr.InvalidRequest("invalid or expired reset token")
	}
	user, err := s.GetUser(claims.UserID)
	if err != nil {
		return err
	}
	if len(req.NewPassword) < 8 {
		return apperr.InvalidRequest("password must be at least 8 characters")
	}
	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(user)
}

// DeleteByContactID removes all portal logins for a contact.
func (s *Service) DeleteByContactID(contactID string) error {
	return s.users.DeleteByContactID(contactID)
}
