// file: repository/cart_repository.go

package repository

import (
	"database/sql"
	"food-storefront/logger"
	"food-storefront/model"

	"github.com/sirupsen/logrus"
)

// ICartRepository defines the contract for cart database operations.
type ICartRepository interface {
	GetCartByUserID(userID int) ([]*model.CartItem, error)
	GetCartItemByID(id int) (*model.CartItem, error)
	AddOrIncrement(item *model.CartItem) error
	UpdateQuantity(id, quantity int) error
	DeleteCartItem(id int) error
	GetCartForUpdate(tx *sql.Tx, userID int) ([]*model.CartItem, error)
	ClearCart(tx *sql.Tx, userID int) error
}

type CartRepository struct {
	DB *sql.DB
}

func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{DB: db}
}

const selectCart = `SELECT c.id, c.user_id, c.restaurant_id, c.food_item_id, f.food_item_name, c.quantity, c.price
	FROM cart_items c JOIN food_items f ON f.id = c.food_item_id`

type rowScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func scanCart(rows rowScanner) ([]*model.CartItem, error) {
	items := []*model.CartItem{}
	for rows.Next() {
		var it model.CartItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.RestaurantID, &it.FoodItemID, &it.FoodItemName, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

func (r *CartRepository) GetCartByUserID(userID int) ([]*model.CartItem, error) {
	log := logger.Log.WithField("user_id", userID)

	rows, err := r.DB.Query(selectCart+` WHERE c.user_id = $1 ORDER BY c.id`, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for cart by user ID")
		return nil, err
	}
	defer rows.Close()
	return scanCart(rows)
}

func (r *CartRepository) GetCartItemByID(id int) (*model.CartItem, error) {
	var it model.CartItem
	err := r.DB.QueryRow(selectCart+` WHERE c.id = $1`, id).
		Scan(&it.ID, &it.UserID, &it.RestaurantID, &it.FoodItemID, &it.FoodItemName, &it.Quantity, &it.Price)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// AddOrIncrement inserts the line or, if the user already has the food item
// in the cart, adds to its quantity.
func (r *CartRepository) AddOrIncrement(item *model.CartItem) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":      item.UserID,
		"food_item_id": item.FoodItemID,
		"quantity":     item.Quantity,
	})
	log.Info("Executing query to add item to cart")

	query := `INSERT INTO cart_items (user_id, restaurant_id, food_item_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, food_item_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, price = EXCLUDED.price
		RETURNING id, quantity`
	err := r.DB.QueryRow(query, item.UserID, item.RestaurantID, item.FoodItemID, item.Quantity, item.Price).Scan(&item.ID, &item.Quantity)
	if err != nil {
		log.WithError(err).Error("Failed to execute add to cart query")
		return err
	}
	return nil
}

func (r *CartRepository) UpdateQuantity(id, quantity int) error {
	_, err := r.DB.Exec(`UPDATE cart_items SET quantity = $1 WHERE id = $2`, quantity, id)
	if err != nil {
		logger.Log.WithError(err).WithField("cart_id", id).Error("Failed to execute update cart quantity query")
	}
	return err
}

func (r *CartRepository) DeleteCartItem(id int) error {
	_, err := r.DB.Exec(`DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		logger.Log.WithError(err).WithField("cart_id", id).Error("Failed to execute delete cart item query")
	}
	return err
}

// GetCartForUpdate locks the user's cart rows for the duration of tx.
func (r *CartRepository) GetCartForUpdate(tx *sql.Tx, userID int) ([]*model.CartItem, error) {
	rows, err := tx.Query(selectCart+` WHERE c.user_id = $1 ORDER BY c.id FOR UPDATE OF c`, userID)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to execute get cart for update query")
		return nil, err
	}
	defer rows.Close()
	return scanCart(rows)
}

func (r *CartRepository) ClearCart(tx *sql.Tx, userID int) error {
	_, err := tx.Exec(`DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to execute clear cart query")
	}
	return err
}
