package repository

import (
	"database/sql"
	"food-storefront/logger"
	"food-storefront/model"
)

type IContactRepository interface {
	CreateMessage(msg *model.ContactMessage) error
}

type ContactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) CreateMessage(msg *model.ContactMessage) error {
	query := `INSERT INTO contact_messages (user_id, subject, message) VALUES ($1, $2, $3) RETURNING id, created_at`
	err := r.DB.QueryRow(query, msg.UserID, msg.Subject, msg.Message).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", msg.UserID).Error("Failed to execute create contact message query")
		return err
	}
	return nil
}
