// file: service/menu_service.go

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"food-storefront/config"
	"food-storefront/logger"
	"food-storefront/model"
	"food-storefront/repository"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

func categoriesKey(restaurantID int) string { return fmt.Sprintf("menu:%d:categories", restaurantID) }
func foodItemsKey(restaurantID int) string  { return fmt.Sprintf("menu:%d:items", restaurantID) }

// MenuService manages food categories and food items of a restaurant.
type MenuService struct {
	menuRepo       repository.IMenuRepository
	restaurantRepo repository.IRestaurantRepository
	cache          ICacheClient
}

func NewMenuService(menuRepo repository.IMenuRepository, restaurantRepo repository.IRestaurantRepository, cache ICacheClient) *MenuService {
	return &MenuService{
		menuRepo:       menuRepo,
		restaurantRepo: restaurantRepo,
		cache:          cache,
	}
}

func (s *MenuService) CreateCategory(ctx context.Context, session model.Session, restaurantID int, req model.FoodCategoryRequest) (*model.FoodCategory, error) {
	if _, err := requireOwner(s.restaurantRepo, session, restaurantID); err != nil {
		return nil, err
	}

	category := &model.FoodCategory{
		RestaurantID:     restaurantID,
		FoodCategoryName: strings.TrimSpace(req.FoodCategoryName),
	}
	if err := s.menuRepo.CreateCategory(category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}

	invalidate(ctx, s.cache, categoriesKey(restaurantID))
	return category, nil
}

func (s *MenuService) UpdateCategory(ctx context.Context, session model.Session, categoryID int, req model.FoodCategoryRequest) (*model.FoodCategory, error) {
	category, err := s.ownedCategory(session, categoryID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.FoodCategoryName)
	if err := s.menuRepo.UpdateCategoryName(categoryID, name); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrCategoryExists
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	category.FoodCategoryName = name

	invalidate(ctx, s.cache, categoriesKey(category.RestaurantID))
	return category, nil
}

func (s *MenuService) ListCategories(ctx context.Context, restaurantID int) ([]*model.FoodCategory, error) {
	return cacheAside(ctx, s.cache, categoriesKey(restaurantID), config.AppConfig.Cache.TTL, func() ([]*model.FoodCategory, error) {
		return s.menuRepo.GetCategoriesByRestaurant(restaurantID)
	})
}

// CreateFoodItem adds an item to the category from a validated form.
func (s *MenuService) CreateFoodItem(ctx context.Context, session model.Session, categoryID int, form model.FoodItemForm) (*model.FoodItem, error) {
	category, err := s.ownedCategory(session, categoryID)
	if err != nil {
		return nil, err
	}

	price, err := parsePrice(form.Price)
	if err != nil {
		return nil, err
	}

	item := &model.FoodItem{
		RestaurantID: category.RestaurantID,
		CategoryID:   category.ID,
		FoodItemName: strings.TrimSpace(form.FoodItemName),
		Description:  strings.TrimSpace(form.Description),
		Price:        price,
		IsAvailable:  form.IsAvailable,
		Image:        form.Image,
	}
	if err := s.menuRepo.CreateFoodItem(item); err != nil {
		return nil, err
	}

	invalidate(ctx, s.cache, foodItemsKey(item.RestaurantID))
	logger.Log.WithFields(logrus.Fields{
		"food_item_id":  item.ID,
		"restaurant_id": item.RestaurantID,
	}).Info("Food item created")
	return item, nil
}

// UpdateFoodItem edits an item. An empty form.Image keeps the stored image.
func (s *MenuService) UpdateFoodItem(ctx context.Context, session model.Session, itemID int, form model.FoodItemForm) (*model.FoodItem, error) {
	item, err := s.menuRepo.GetFoodItemByID(itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFoodItemNotFound
		}
		return nil, err
	}
	if _, err := requireOwner(s.restaurantRepo, session, item.RestaurantID); err != nil {
		return nil, err
	}

	price, err := parsePrice(form.Price)
	if err != nil {
		return nil, err
	}

	item.FoodItemName = strings.TrimSpace(form.FoodItemName)
	item.Description = strings.TrimSpace(form.Description)
	item.Price = price
	item.IsAvailable = form.IsAvailable
	item.Image = form.Image

	if err := s.menuRepo.UpdateFoodItem(item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFoodItemNotFound
		}
		return nil, err
	}

	invalidate(ctx, s.cache, foodItemsKey(item.RestaurantID))
	item.Image = nil
	return item, nil
}

func (s *MenuService) ListFoodItems(ctx context.Context, restaurantID int) ([]*model.FoodItem, error) {
	return cacheAside(ctx, s.cache, foodItemsKey(restaurantID), config.AppConfig.Cache.TTL, func() ([]*model.FoodItem, error) {
		return s.menuRepo.GetFoodItemsByRestaurant(restaurantID)
	})
}

func (s *MenuService) ListFoodItemsByCategory(categoryID int) ([]*model.FoodItem, error) {
	if _, err := s.menuRepo.GetCategoryByID(categoryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return s.menuRepo.GetFoodItemsByCategory(categoryID)
}

func (s *MenuService) GetFoodItemImage(id int) ([]byte, error) {
	image, err := s.menuRepo.GetFoodItemImage(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFoodItemNotFound
		}
		return nil, err
	}
	return image, nil
}

func (s *MenuService) ownedCategory(session model.Session, categoryID int) (*model.FoodCategory, error) {
	category, err := s.menuRepo.GetCategoryByID(categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	if _, err := requireOwner(s.restaurantRepo, session, category.RestaurantID); err != nil {
		return nil, err
	}
	return category, nil
}

// parsePrice converts a validated price and rounds it to cents.
func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", raw, err)
	}
	return roundCents(price), nil
}
