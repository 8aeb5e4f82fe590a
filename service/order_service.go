package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"food-storefront/logger"
	"food-storefront/model"
	"food-storefront/repository"
	"math"

	"github.com/sirupsen/logrus"
)

type OrderService struct {
	db          *sql.DB
	cartRepo    repository.ICartRepository
	addressRepo repository.IAddressRepository
	orderRepo   repository.IOrderRepository
}

func NewOrderService(db *sql.DB, cartRepo repository.ICartRepository, addressRepo repository.IAddressRepository, orderRepo repository.IOrderRepository) *OrderService {
	return &OrderService{
		db:          db,
		cartRepo:    cartRepo,
		addressRepo: addressRepo,
		orderRepo:   orderRepo,
	}
}

// PlaceOrder converts the caller's cart into an order in one transaction:
// the cart rows are locked, copied into order items and then cleared.
func (s *OrderService) PlaceOrder(ctx context.Context, session model.Session, req model.PlaceOrderRequest) (*model.Order, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":    session.UserID,
		"address_id": req.AddressID,
	})
	log.Info("Starting order placement")

	address, err := s.addressRepo.GetAddressByID(req.AddressID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}
	if address.UserID != session.UserID {
		return nil, ErrPermissionDenied
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	cart, err := s.cartRepo.GetCartForUpdate(tx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not load cart: %w", err)
	}
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	order := &model.Order{
		UserID:       session.UserID,
		RestaurantID: cart[0].RestaurantID,
		AddressID:    address.ID,
		TotalPrice:   cartTotal(cart),
		Status:       model.OrderStatusPlaced,
	}
	if err := s.orderRepo.CreateOrder(tx, order); err != nil {
		return nil, fmt.Errorf("could not create order: %w", err)
	}

	for _, line := range cart {
		item := model.OrderItem{
			OrderID:    order.ID,
			FoodItemID: line.FoodItemID,
			Quantity:   line.Quantity,
			Price:      line.Price,
		}
		if err := s.orderRepo.CreateOrderItem(tx, &item); err != nil {
			return nil, fmt.Errorf("could not create order item: %w", err)
		}
		order.Items = append(order.Items, item)
	}

	if err := s.cartRepo.ClearCart(tx, session.UserID); err != nil {
		return nil, fmt.Errorf("could not clear cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	log.WithFields(logrus.Fields{
		"order_id":    order.ID,
		"total_price": order.TotalPrice,
	}).Info("Order placed successfully")
	return order, nil
}

func (s *OrderService) ListOrders(userID int) ([]*model.Order, error) {
	return s.orderRepo.GetOrdersByUserID(userID)
}

func cartTotal(cart []*model.CartItem) float64 {
	total := 0.0
	for _, line := range cart {
		total += float64(line.Quantity) * line.Price
	}
	return roundCents(total)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
