package auth

import (
	"github.com/bizledger/bizledger-be/internal/core/apperr"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case apperr.IsNotFound(err):
		status = fiber.StatusNotFound
	case apperr.IsInvalidRequest(err):
		status = fiber.StatusBadRequest
	case apperr.IsConflict(err):
		status = fiber.StatusConflict
	case apperr.IsForbidden(err):
		status = fiber.StatusForbidden
	}
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "internal server error"
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// Register godoc
// @Summary Create a user account
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "New account"
// @Success 201 {object} User
// @Router /api/auth/register [post]
func (h *Handler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	user, err := h.service.Register(req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary Exchange credentials for a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Router /api/auth/login [post]
func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	user, tokens, err := h.service.Login(req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"user": user, "tokens": tokens})
}

func (h *Handler) Refresh(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	tokens, err := h.service.Refresh(req.RefreshToken)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(tokens)
}

func (h *Handler) Me(c *fiber.Ctx) error {
	user, err := h.service.GetUser(UserID(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(user)
}

func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	user, err := h.service.UpdateProfile(UserID(c), req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(user)
}

func (h *Handler) ChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.service.ChangePassword(UserID(c), req); err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "password updated"})
}

// ForgotPassword always answers 200 so the endpoint cannot be used
// to probe which emails have accounts.
func (h *Handler) ForgotPassword(c *fiber.Ctx) error {
	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.service.ForgotPassword(req.Email); err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "if the email is registered, a reset link has been sent"})
}

func (h *Handler) ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.service.ResetPassword(req); err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "password has been reset"})
}
