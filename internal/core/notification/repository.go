package notification

import "gorm.io/gorm"

type Repo interface {
	Create(n *Notification) error
	ListByUser(userID string, limit int) ([]Notification, error)
	CountUnread(userID string) (int64, error)
	MarkRead(userID, notificationID string) error
	MarkAllRead(userID string) error
	ListAdminRecipients() ([]Recipient, error)
}

// Recipient is an admin user the service fans events out to.
type Recipient struct {
	ID    string
	Email string
	Name  string
}

type repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repo {
	return &repo{db: db}
}

func (r *repo) Create(n *Notification) error {
	return r.db.Create(n).Error
}

func (r *repo) ListByUser(userID string, limit int) ([]Notification, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}
	var notifications []Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (r *repo) CountUnread(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *repo) MarkRead(userID, notificationID string) error {
	return r.db.Model(&Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true).Error
}

func (r *repo) MarkAllRead(userID string) error {
	return r.db.Model(&Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

func (r *repo) ListAdminRecipients() ([]Recipient, error) {
	var recipients []Recipient
	err := r.db.Table("users").
		Select("id, email, name").
		Where("role = ? AND is_active = ?", "admin", true).
		Scan(&recipients).Error
	return recipients, err
}
