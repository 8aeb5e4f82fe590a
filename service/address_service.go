package service

import (
	"food-storefront/model"
	"food-storefront/repository"
	"strings"
)

type AddressService struct {
	repo repository.IAddressRepository
}

func NewAddressService(repo repository.IAddressRepository) *AddressService {
	return &AddressService{repo: repo}
}

// AddAddress stores a validated delivery address for the session's user.
func (s *AddressService) AddAddress(session model.Session, req model.AddressRequest) (*model.Address, error) {
	address := &model.Address{
		UserID:  session.UserID,
		Street:  strings.TrimSpace(req.Street),
		City:    strings.TrimSpace(req.City),
		State:   strings.TrimSpace(req.State),
		Country: strings.TrimSpace(req.Country),
		PinCode: strings.TrimSpace(req.PinCode),
	}
	if err := s.repo.CreateAddress(address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) ListAddresses(userID int) ([]*model.Address, error) {
	return s.repo.GetAddressesByUserID(userID)
}
