package notification

import "github.com/rs/zerolog/log"

type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// NotifyAdmins creates one in-app notification per active admin. Fan-out is
// best effort: one failed insert does not stop the rest.
func (s *Service) NotifyAdmins(title, message, category string) error {
	recipients, err := s.repo.ListAdminRecipients()
	if err != nil {
		return err
	}
	for _, recipient := range recipients {
		n := &Notification{
			UserID:   recipient.ID,
			Title:    title,
			Message:  message,
			Category: category,
		}
		if err := s.repo.Create(n); err != nil {
			log.Warn().Err(err).Str("user_id", recipient.ID).Msg("failed to create notification")
		}
	}
	return nil
}

func (s *Service) Notify(userID, title, message, category string) error {
	return s.repo.Create(&Notification{
		UserID:   userID,
		Title:    title,
		Message:  message,
		Category: category,
	})
}

func (s *Service) List(userID string, limit int) ([]Notification, error) {
	return s.repo.ListByUser(userID, limit)
}

func (s *Service) UnreadCount(userID string) (int64, error) {
	return s.repo.CountUnread(userID)
}

func (s *Service) MarkRead(userID, notificationID string) error {
	return s.repo.MarkRead(userID, notificationID)
}

func (s *Service) MarkAllRead(userID string) error {
	return s.repo.MarkAllRead(userID)
}

// AdminRecipients exposes the fan-out list for email digests.
func (s *Service) AdminRecipients() ([]Recipient, error) {
	return s.repo.ListAdminRecipients()
}
