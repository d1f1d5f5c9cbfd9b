package services

import (
	"encoding/json"
	"errors"

	"github.com/bizledger/bizledger-be/internal/core/apperr"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/models"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/repositories"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ContactService struct {
	contactRepo repositories.ContactRepo
	portalUsers PortalUserRemover
}

func NewContactService(contactRepo repositories.ContactRepo, portalUsers PortalUserRemover) *ContactService {
	return &ContactService{contactRepo: contactRepo, portalUsers: portalUsers}
}

func validContactType(t string) bool {
	return t == models.ContactTypeCustomer || t == models.ContactTypeVendor || t == models.ContactTypeBoth
}

func marshalAddress(addr *models.Address) datatypes.JSON {
	if addr == nil {
		return nil
	}
	raw, err := json.Marshal(addr)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func (s *ContactService) Create(req models.ContactRequest) (*models.Contact, error) {
	if req.Name == "" {
		return nil, apperr.InvalidRequest("contact name is required")
	}
	contactType := req.ContactType
	if contactType == "" {
		contactType = models.ContactTypeCustomer
	}
	if !validContactType(contactType) {
		return nil, apperr.InvalidRequest("contact_type must be customer, vendor or both")
	}

	contact := &models.Contact{
		Name:            req.Name,
		ContactType:     contactType,
		Email:           req.Email,
		Phone:           req.Phone,
		Mobile:          req.Mobile,
		GSTIN:           req.GSTIN,
		PAN:             req.PAN,
		BillingAddress:  marshalAddress(req.BillingAddress),
		ShippingAddress: marshalAddress(req.ShippingAddress),
		PaymentTerms:    30,
	}
	if req.Notes != nil {
		contact.Notes = *req.Notes
	}
	if req.PaymentTerms != nil {
		if *req.PaymentTerms < 0 {
			return nil, apperr.InvalidRequest("payment_terms cannot be negative")
		}
		contact.PaymentTerms = *req.PaymentTerms
	}
	if req.CreditLimit != nil {
		if req.CreditLimit.IsNegative() {
			return nil, apperr.InvalidRequest("credit_limit cannot be negative")
		}
		contact.CreditLimit = *req.CreditLimit
	}

	if err := s.contactRepo.Create(contact); err != nil {
		return nil, err
	}
	log.Info().Str("contact_id", contact.ID).Str("name", contact.Name).Msg("contact created")
	return contact, nil
}

func (s *ContactService) Get(id string) (*models.Contact, error) {
	contact, err := s.contactRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("contact not found")
		}
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) List(filter models.ContactFilter) ([]models.Contact, int64, error) {
	return s.contactRepo.List(filter)
}

func (s *ContactService) Update(id string, req models.ContactRequest) (*models.Contact, error) {
	contact, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		contact.Name = req.Name
	}
	if req.ContactType != "" {
		if !validContactType(req.ContactType) {
			return nil, apperr.InvalidRequest("contact_type must be customer, vendor or both")
		}
		contact.ContactType = req.ContactType
	}
	contact.Email = req.Email
	contact.Phone = req.Phone
	contact.Mobile = req.Mobile
	contact.GSTIN = req.GSTIN
	contact.PAN = req.PAN
	if req.Notes != nil {
		contact.Notes = *req.Notes
	}
	if req.BillingAddress != nil {
		contact.BillingAddress = marshalAddress(req.BillingAddress)
	}
	if req.ShippingAddress != nil {
		contact.ShippingAddress = marshalAddress(req.ShippingAddress)
	}
	if req.PaymentTerms != nil {
		if *req.PaymentTerms < 0 {
			return nil, apperr.InvalidRequest("payment_terms cannot be negative")
		}
		contact.PaymentTerms = *req.PaymentTerms
	}
	if req.CreditLimit != nil {
		if req.CreditLimit.IsNegative() {
			return nil, apperr.InvalidRequest("credit_limit cannot be negative")
		}
		contact.CreditLimit = *req.CreditLimit
	}

	if err := s.contactRepo.Update(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// ToggleArchive flips the archived flag.
func (s *ContactService) ToggleArchive(id string) (*models.Contact, error) {
	contact, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	contact.IsArchived = !contact.IsArchived
	if err := s.contactRepo.Update(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Delete removes a contact and its portal logins. Contacts referenced by
// any document must be archived instead.
func (s *ContactService) Delete(id string) error {
	contact, err := s.Get(id)
	if err != nil {
		return err
	}

	hasTx, err := s.contactRepo.HasTransactions(contact.ID)
	if err != nil {
		return err
	}
	if hasTx {
		return apperr.Conflict("cannot delete contact with existing transactions, archive instead")
	}

	if s.portalUsers != nil {
		if err := s.portalUsers.DeleteByContactID(contact.ID); err != nil {
			return err
		}
	}
	if err := s.contactRepo.Delete(contact.ID); err != nil {
		return err
	}
	log.Info().Str("contact_id", contact.ID).Msg("contact deleted")
	return nil
}
