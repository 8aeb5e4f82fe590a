package repository

import (
	"database/sql"
	"food-storefront/logger"
	"food-storefront/model"

	"github.com/sirupsen/logrus"
)

// IRestaurantRepository defines the contract for restaurant database operations.
type IRestaurantRepository interface {
	CreateRestaurant(restaurant *model.Restaurant) error
	GetAllRestaurants() ([]*model.Restaurant, error)
	GetRestaurantByID(id int) (*model.Restaurant, error)
	GetRestaurantsByOwner(ownerID int) ([]*model.Restaurant, error)
	GetRestaurantImage(id int) ([]byte, error)
}

type RestaurantRepository struct {
	DB *sql.DB
}

func NewRestaurantRepository(db *sql.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) CreateRestaurant(restaurant *model.Restaurant) error {
	log := logger.Log.WithFields(logrus.Fields{
		"owner_id":        restaurant.OwnerID,
		"restaurant_name": restaurant.RestaurantName,
		"image_bytes":     len(restaurant.Image),
	})
	log.Info("Executing query to create a new restaurant")

	query := `INSERT INTO restaurants (owner_id, restaurant_name, restaurant_address, contact_number, description, restaurant_image)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.DB.QueryRow(query, restaurant.OwnerID, restaurant.RestaurantName, restaurant.RestaurantAddress,
		restaurant.ContactNumber, restaurant.Description, restaurant.Image).Scan(&restaurant.ID, &restaurant.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create restaurant query")
		return err
	}
	return nil
}

const selectRestaurant = `SELECT id, owner_id, restaurant_name, restaurant_address, contact_number, description, created_at FROM restaurants`

func (r *RestaurantRepository) queryRestaurants(log *logrus.Entry, query string, args ...interface{}) ([]*model.Restaurant, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		log.WithError(err).Error("Failed to execute restaurant list query")
		return nil, err
	}
	defer rows.Close()

	restaurants := []*model.Restaurant{}
	for rows.Next() {
		var rs model.Restaurant
		if err := rows.Scan(&rs.ID, &rs.OwnerID, &rs.RestaurantName, &rs.RestaurantAddress, &rs.ContactNumber, &rs.Description, &rs.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan restaurant row")
			return nil, err
		}
		restaurants = append(restaurants, &rs)
	}
	return restaurants, rows.Err()
}

func (r *RestaurantRepository) GetAllRestaurants() ([]*model.Restaurant, error) {
	log := logger.Log.WithField("query", "all_restaurants")
	log.Info("Executing query to get all restaurants")
	return r.queryRestaurants(log, selectRestaurant+` ORDER BY restaurant_name`)
}

// GetRestaurantsByOwner lists the restaurants a single owner manages.
func (r *RestaurantRepository) GetRestaurantsByOwner(ownerID int) ([]*model.Restaurant, error) {
	log := logger.Log.WithField("owner_id", ownerID)
	log.Info("Executing query to get restaurants by owner")
	return r.queryRestaurants(log, selectRestaurant+` WHERE owner_id = $1 ORDER BY restaurant_name`, ownerID)
}

func (r *RestaurantRepository) GetRestaurantByID(id int) (*model.Restaurant, error) {
	var rs model.Restaurant
	err := r.DB.QueryRow(selectRestaurant+` WHERE id = $1`, id).
		Scan(&rs.ID, &rs.OwnerID, &rs.RestaurantName, &rs.RestaurantAddress, &rs.ContactNumber, &rs.Description, &rs.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("restaurant_id", id).Error("Failed to execute get restaurant query")
		}
		return nil, err
	}
	return &rs, nil
}

func (r *RestaurantRepository) GetRestaurantImage(id int) ([]byte, error) {
	var image []byte
	err := r.DB.QueryRow(`SELECT restaurant_image FROM restaurants WHERE id = $1`, id).Scan(&image)
	if err != nil {
		return nil, err
	}
	return image, nil
}
