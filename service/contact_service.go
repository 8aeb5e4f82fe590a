package service

import (
	"food-storefront/logger"
	"food-storefront/model"
	"food-storefront/repository"
	"strings"
)

type ContactService struct {
	repo repository.IContactRepository
}

func NewContactService(repo repository.IContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

func (s *ContactService) Submit(session model.Session, req model.ContactRequest) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		UserID:  session.UserID,
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}
	if err := s.repo.CreateMessage(msg); err != nil {
		return nil, err
	}
	logger.Log.WithField("message_id", msg.ID).Info("Contact message received")
	return msg, nil
}
