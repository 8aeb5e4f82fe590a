package repository

import (
	"database/sql"
	"food-storefront/logger"
	"food-storefront/model"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// IOrderRepository defines the contract for order database operations.
type IOrderRepository interface {
	CreateOrder(tx *sql.Tx, order *model.Order) error
	CreateOrderItem(tx *sql.Tx, item *model.OrderItem) error
	GetOrdersByUserID(userID int) ([]*model.Order, error)
}

type OrderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *sql.Tx, order *model.Order) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":       order.UserID,
		"restaurant_id": order.RestaurantID,
		"total_price":   order.TotalPrice,
	})
	log.Info("Executing query to create a new order")

	query := `INSERT INTO orders (user_id, restaurant_id, address_id, total_price, status)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	err := tx.QueryRow(query, order.UserID, order.RestaurantID, order.AddressID, order.TotalPrice, order.Status).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create order query")
		return err
	}
	return nil
}

func (r *OrderRepository) CreateOrderItem(tx *sql.Tx, item *model.OrderItem) error {
	query := `INSERT INTO order_items (order_id, food_item_id, quantity, price) VALUES ($1, $2, $3, $4) RETURNING id`
	err := tx.QueryRow(query, item.OrderID, item.FoodItemID, item.Quantity, item.Price).Scan(&item.ID)
	if err != nil {
		logger.Log.WithError(err).WithField("order_id", item.OrderID).Error("Failed to execute create order item query")
		return err
	}
	return nil
}

// GetOrdersByUserID returns the user's orders, newest first, with their items.
func (r *OrderRepository) GetOrdersByUserID(userID int) ([]*model.Order, error) {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to get orders by user ID")

	rows, err := r.DB.Query(`SELECT id, user_id, restaurant_id, address_id, total_price, status, created_at
		FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for orders")
		return nil, err
	}
	defer rows.Close()

	orders := []*model.Order{}
	byID := map[int]*model.Order{}
	ids := []int64{}
	for rows.Next() {
		o := &model.Order{Items: []model.OrderItem{}}
		if err := rows.Scan(&o.ID, &o.UserID, &o.RestaurantID, &o.AddressID, &o.TotalPrice, &o.Status, &o.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan order row")
			return nil, err
		}
		orders = append(orders, o)
		byID[o.ID] = o
		ids = append(ids, int64(o.ID))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return orders, nil
	}

	itemRows, err := r.DB.Query(`SELECT id, order_id, food_item_id, quantity, price
		FROM order_items WHERE order_id = ANY($1) ORDER BY id`, pq.Array(ids))
	if err != nil {
		log.WithError(err).Error("Failed to execute query for order items")
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var it model.OrderItem
		if err := itemRows.Scan(&it.ID, &it.OrderID, &it.FoodItemID, &it.Quantity, &it.Price); err != nil {
			log.WithError(err).Error("Failed to scan order item row")
			return nil, err
		}
		if o, ok := byID[it.OrderID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	return orders, itemRows.Err()
}
