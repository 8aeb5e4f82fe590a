// file: service/restaurant_service.go

package service

import (
	"context"
	"database/sql"
	"errors"
	"food-storefront/config"
	"food-storefront/logger"
	"food-storefront/model"
	"food-storefront/repository"
	"strings"

	"github.com/sirupsen/logrus"
)

const allRestaurantsKey = "restaurants:all"

// RestaurantService manages restaurants. The public listing is cached.
type RestaurantService struct {
	repo  repository.IRestaurantRepository
	cache ICacheClient
}

func NewRestaurantService(repo repository.IRestaurantRepository, cache ICacheClient) *RestaurantService {
	return &RestaurantService{repo: repo, cache: cache}
}

// CreateRestaurant stores a restaurant owned by ownerID from a validated form.
func (s *RestaurantService) CreateRestaurant(ctx context.Context, ownerID int, form model.RestaurantForm) (*model.Restaurant, error) {
	restaurant := &model.Restaurant{
		OwnerID:           ownerID,
		RestaurantName:    strings.TrimSpace(form.RestaurantName),
		RestaurantAddress: strings.TrimSpace(form.RestaurantAddress),
		ContactNumber:     strings.TrimSpace(form.ContactNumber),
		Description:       strings.TrimSpace(form.Description),
		Image:             form.Image,
	}

	if err := s.repo.CreateRestaurant(restaurant); err != nil {
		return nil, err
	}

	invalidate(ctx, s.cache, allRestaurantsKey)

	logger.Log.WithFields(logrus.Fields{
		"owner_id":      ownerID,
		"restaurant_id": restaurant.ID,
	}).Info("Restaurant created")
	return restaurant, nil
}

// ListRestaurants lists every restaurant using a cache-aside strategy.
func (s *RestaurantService) ListRestaurants(ctx context.Context) ([]*model.Restaurant, error) {
	return cacheAside(ctx, s.cache, allRestaurantsKey, config.AppConfig.Cache.TTL, s.repo.GetAllRestaurants)
}

// ListOwnerRestaurants is not cached; owners expect their own edits immediately.
func (s *RestaurantService) ListOwnerRestaurants(ownerID int) ([]*model.Restaurant, error) {
	return s.repo.GetRestaurantsByOwner(ownerID)
}

func (s *RestaurantService) GetRestaurant(id int) (*model.Restaurant, error) {
	restaurant, err := s.repo.GetRestaurantByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return restaurant, nil
}

func (s *RestaurantService) GetRestaurantImage(id int) ([]byte, error) {
	image, err := s.repo.GetRestaurantImage(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return image, nil
}

// requireOwner loads the restaurant and checks that session manages it.
func requireOwner(repo repository.IRestaurantRepository, session model.Session, restaurantID int) (*model.Restaurant, error) {
	restaurant, err := repo.GetRestaurantByID(restaurantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	if !session.IsOwner() || restaurant.OwnerID != session.UserID {
		logger.Log.WithFields(logrus.Fields{
			"user_id":       session.UserID,
			"restaurant_id": restaurantID,
		}).Warn("Permission denied for restaurant")
		return nil, ErrPermissionDenied
	}
	return restaurant, nil
}
