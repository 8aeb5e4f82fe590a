package repository

import (
	"database/sql"
	"food-storefront/logger"
	"food-storefront/model"
)

// IAddressRepository defines the contract for delivery address database operations.
type IAddressRepository interface {
	CreateAddress(address *model.Address) error
	GetAddressesByUserID(userID int) ([]*model.Address, error)
	GetAddressByID(id int) (*model.Address, error)
}

type AddressRepository struct {
	DB *sql.DB
}

func NewAddressRepository(db *sql.DB) *AddressRepository {
	return &AddressRepository{DB: db}
}

func (r *AddressRepository) CreateAddress(a *model.Address) error {
	log := logger.Log.WithField("user_id", a.UserID)
	log.Info("Executing query to create an address")

	query := `INSERT INTO addresses (user_id, street, city, state, country, pin_code)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.DB.QueryRow(query, a.UserID, a.Street, a.City, a.State, a.Country, a.PinCode).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create address query")
		return err
	}
	return nil
}

func (r *AddressRepository) GetAddressesByUserID(userID int) ([]*model.Address, error) {
	log := logger.Log.WithField("user_id", userID)

	query := `SELECT id, user_id, street, city, state, country, pin_code, created_at FROM addresses WHERE user_id = $1 ORDER BY id`
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for addresses by user ID")
		return nil, err
	}
	defer rows.Close()

	addresses := []*model.Address{}
	for rows.Next() {
		var a model.Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.Street, &a.City, &a.State, &a.Country, &a.PinCode, &a.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan address row")
			return nil, err
		}
		addresses = append(addresses, &a)
	}
	return addresses, rows.Err()
}

func (r *AddressRepository) GetAddressByID(id int) (*model.Address, error) {
	var a model.Address
	query := `SELECT id, user_id, street, city, state, country, pin_code, created_at FROM addresses WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&a.ID, &a.UserID, &a.Street, &a.City, &a.State, &a.Country, &a.PinCode, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
