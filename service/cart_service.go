// file: service/cart_service.go

package service

import (
	"database/sql"
	"errors"
	"food-storefront/logger"
	"food-storefront/model"
	"food-storefront/repository"

	"github.com/sirupsen/logrus"
)

// CartService manages the per-user cart. A cart holds items from one
// restaurant at a time.
type CartService struct {
	cartRepo repository.ICartRepository
	menuRepo repository.IMenuRepository
}

func NewCartService(cartRepo repository.ICartRepository, menuRepo repository.IMenuRepository) *CartService {
	return &CartService{cartRepo: cartRepo, menuRepo: menuRepo}
}

func (s *CartService) AddToCart(session model.Session, req model.AddToCartRequest) (*model.CartItem, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":      session.UserID,
		"food_item_id": req.FoodItemID,
	})

	item, err := s.menuRepo.GetFoodItemByID(req.FoodItemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFoodItemNotFound
		}
		return nil, err
	}
	if !item.IsAvailable {
		return nil, ErrFoodItemUnavailable
	}

	cart, err := s.cartRepo.GetCartByUserID(session.UserID)
	if err != nil {
		return nil, err
	}
	if len(cart) > 0 && cart[0].RestaurantID != item.RestaurantID {
		log.Info("Rejected cart item from a different restaurant")
		return nil, ErrCartRestaurantMismatch
	}

	line := &model.CartItem{
		UserID:       session.UserID,
		RestaurantID: item.RestaurantID,
		FoodItemID:   item.ID,
		FoodItemName: item.FoodItemName,
		Quantity:     req.Quantity,
		Price:        item.Price,
	}
	if err := s.cartRepo.AddOrIncrement(line); err != nil {
		return nil, err
	}

	log.WithField("quantity", line.Quantity).Info("Item added to cart")
	return line, nil
}

func (s *CartService) GetCart(userID int) ([]*model.CartItem, error) {
	return s.cartRepo.GetCartByUserID(userID)
}

// ChangeQuantity adds delta to a cart line. A resulting quantity of zero or
// less removes the line and returns a nil item.
func (s *CartService) ChangeQuantity(session model.Session, cartID, delta int) (*model.CartItem, error) {
	line, err := s.cartRepo.GetCartItemByID(cartID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	if line.UserID != session.UserID {
		return nil, ErrPermissionDenied
	}

	quantity := line.Quantity + delta
	if quantity <= 0 {
		if err := s.cartRepo.DeleteCartItem(cartID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	if err := s.cartRepo.UpdateQuantity(cartID, quantity); err != nil {
		return nil, err
	}
	line.Quantity = quantity
	return line, nil
}
