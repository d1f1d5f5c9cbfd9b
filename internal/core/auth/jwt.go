package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
	tokenTypeReset   = "reset"

	accessTokenTTL  = 1 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
	resetTokenTTL   = 1 * time.Hour
)

type Claims struct {
	UserID    string  `json:"user_id"`
	Role      string  `json:"role"`
	ContactID *string `json:"contact_id,omitempty"`
	TokenType string  `json:"token_type"`
	jwt.RegisteredClaims
}

type JWTManager struct {
	secret []byte
}

func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{secret: []byte(secret)}
}

func (m *JWTManager) sign(user *User, tokenType string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID:    user.ID,
		Role:      user.Role,
		ContactID: user.ContactID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *JWTManager) GenerateTokenPair(user *User) (*TokenPair, error) {
	access, err := m.sign(user, tokenTypeAccess, accessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := m.sign(user, tokenTypeRefresh, refreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTokenTTL.Seconds()),
	}, nil
}

func (m *JWTManager) GenerateResetToken(user *User) (string, error) {
	return m.sign(user, tokenTypeReset, resetTokenTTL)
}

func (m *JWTManager) parse(tokenString, expectedType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.TokenType != expectedType {
		return nil, fmt.Errorf("invalid token type")
	}
	return claims, nil
}

func (m *JWTManager) ParseAccessToken(token string) (*Claims, error) {
	return m.parse(token, tokenTypeAccess)
}

func (m *JWTManager) ParseRefreshToken(token string) (*Claims, error) {
	return m.parse(token, tokenTypeRefresh)
}

func (m *JWTManager) ParseResetToken(token string) (*Claims, error) {
	return m.parse(token, tokenTypeReset)
}
