package handlers

import (
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/services"
	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	contacts *services.ContactService
}

func NewContactHandler(contacts *services.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Create godoc
// @Summary Create a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body models.ContactRequest true "Contact"
// @Success 201 {object} models.Contact
// @Router /api/contacts [post]
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req models.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	contact, err := h.contacts.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(contact)
}

// List godoc
// @Summary List contacts
// @Tags contacts
// @Produce json
// @Param contact_type query string false "customer, vendor or both"
// @Param search query string false "Name, email or phone search"
// @Param include_archived query bool false "Include archived contacts"
// @Success 200 {object} map[string]interface{}
// @Router /api/contacts [get]
func (h *ContactHandler) List(c *fiber.Ctx) error {
	page, limit := parsePage(c)
	filter := models.ContactFilter{
		ContactType:     c.Query("contact_type"),
		Search:          c.Query("search"),
		IncludeArchived: c.QueryBool("include_archived", false),
		Page:            page,
		Limit:           limit,
	}
	contacts, total, err := h.contacts.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listResponse(contacts, total, page, limit))
}

// Get godoc
// @Summary Get a contact
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} models.Contact
// @Router /api/contacts/{id} [get]
func (h *ContactHandler) Get(c *fiber.Ctx) error {
	contact, err := h.contacts.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(contact)
}

// Update godoc
// @Summary Update a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param contact body models.ContactRequest true "Contact"
// @Success 200 {object} models.Contact
// @Router /api/contacts/{id} [put]
func (h *ContactHandler) Update(c *fiber.Ctx) error {
	var req models.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	contact, err := h.contacts.Update(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(contact)
}

// ToggleArchive godoc
// @Summary Archive or unarchive a contact
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} models.Contact
// @Router /api/contacts/{id}/archive [post]
func (h *ContactHandler) ToggleArchive(c *fiber.Ctx) error {
	contact, err := h.contacts.ToggleArchive(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(contact)
}

// Delete godoc
// @Summary Delete a contact
// @Tags contacts
// @Param id path string true "Contact ID"
// @Success 204
// @Router /api/contacts/{id} [delete]
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	if err := h.contacts.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
