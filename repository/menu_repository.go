// file: repository/menu_repository.go

package repository

import (
	"database/sql"
	"food-storefront/logger"
	"food-storefront/model"

	"github.com/sirupsen/logrus"
)

// IMenuRepository defines the contract for food category and food item
// database operations.
type IMenuRepository interface {
	CreateCategory(category *model.FoodCategory) error
	UpdateCategoryName(id int, name string) error
	GetCategoryByID(id int) (*model.FoodCategory, error)
	GetCategoriesByRestaurant(restaurantID int) ([]*model.FoodCategory, error)

	CreateFoodItem(item *model.FoodItem) error
	UpdateFoodItem(item *model.FoodItem) error
	GetFoodItemByID(id int) (*model.FoodItem, error)
	GetFoodItemsByRestaurant(restaurantID int) ([]*model.FoodItem, error)
	GetFoodItemsByCategory(categoryID int) ([]*model.FoodItem, error)
	GetFoodItemImage(id int) ([]byte, error)
}

type MenuRepository struct {
	DB *sql.DB
}

func NewMenuRepository(db *sql.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) CreateCategory(category *model.FoodCategory) error {
	log := logger.Log.WithFields(logrus.Fields{
		"restaurant_id": category.RestaurantID,
		"name":          category.FoodCategoryName,
	})
	log.Info("Executing query to create a food category")

	query := `INSERT INTO food_categories (restaurant_id, food_category_name) VALUES ($1, $2) RETURNING id, created_at`
	err := r.DB.QueryRow(query, category.RestaurantID, category.FoodCategoryName).Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		log.WithError(err).Error("Failed to execute create food category query")
		return err
	}
	return nil
}

func (r *MenuRepository) UpdateCategoryName(id int, name string) error {
	log := logger.Log.WithFields(logrus.Fields{"category_id": id, "name": name})
	log.Info("Executing query to rename a food category")

	res, err := r.DB.Exec(`UPDATE food_categories SET food_category_name = $1 WHERE id = $2`, name, id)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		log.WithError(err).Error("Failed to execute update food category query")
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *MenuRepository) GetCategoryByID(id int) (*model.FoodCategory, error) {
	var c model.FoodCategory
	query := `SELECT id, restaurant_id, food_category_name, created_at FROM food_categories WHERE id = $1`
	if err := r.DB.QueryRow(query, id).Scan(&c.ID, &c.RestaurantID, &c.FoodCategoryName, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MenuRepository) GetCategoriesByRestaurant(restaurantID int) ([]*model.FoodCategory, error) {
	log := logger.Log.WithField("restaurant_id", restaurantID)
	log.Info("Executing query to get food categories by restaurant")

	query := `SELECT id, restaurant_id, food_category_name, created_at FROM food_categories WHERE restaurant_id = $1 ORDER BY food_category_name`
	rows, err := r.DB.Query(query, restaurantID)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for food categories")
		return nil, err
	}
	defer rows.Close()

	categories := []*model.FoodCategory{}
	for rows.Next() {
		var c model.FoodCategory
		if err := rows.Scan(&c.ID, &c.RestaurantID, &c.FoodCategoryName, &c.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan food category row")
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (r *MenuRepository) CreateFoodItem(item *model.FoodItem) error {
	log := logger.Log.WithFields(logrus.Fields{
		"restaurant_id": item.RestaurantID,
		"category_id":   item.CategoryID,
		"name":          item.FoodItemName,
	})
	log.Info("Executing query to create a food item")

	query := `INSERT INTO food_items (restaurant_id, category_id, food_item_name, description, price, is_available, food_item_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	err := r.DB.QueryRow(query, item.RestaurantID, item.CategoryID, item.FoodItemName, item.Description,
		item.Price, item.IsAvailable, item.Image).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create food item query")
		return err
	}
	return nil
}

// UpdateFoodItem overwrites the editable columns. The stored image is kept
// when item.Image is empty.
func (r *MenuRepository) UpdateFoodItem(item *model.FoodItem) error {
	log := logger.Log.WithFields(logrus.Fields{
		"food_item_id":  item.ID,
		"replace_image": len(item.Image) > 0,
	})
	log.Info("Executing query to update a food item")

	query := `UPDATE food_items
		SET food_item_name = $1, description = $2, price = $3, is_available = $4,
			food_item_image = COALESCE($5, food_item_image)
		WHERE id = $6`
	var image interface{}
	if len(item.Image) > 0 {
		image = item.Image
	}
	res, err := r.DB.Exec(query, item.FoodItemName, item.Description, item.Price, item.IsAvailable, image, item.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute update food item query")
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

const selectFoodItem = `SELECT id, restaurant_id, category_id, food_item_name, description, price, is_available, created_at FROM food_items`

func (r *MenuRepository) queryFoodItems(log *logrus.Entry, query string, args ...interface{}) ([]*model.FoodItem, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		log.WithError(err).Error("Failed to execute food item list query")
		return nil, err
	}
	defer rows.Close()

	items := []*model.FoodItem{}
	for rows.Next() {
		var it model.FoodItem
		if err := rows.Scan(&it.ID, &it.RestaurantID, &it.CategoryID, &it.FoodItemName, &it.Description, &it.Price, &it.IsAvailable, &it.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan food item row")
			return nil, err
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

func (r *MenuRepository) GetFoodItemByID(id int) (*model.FoodItem, error) {
	var it model.FoodItem
	err := r.DB.QueryRow(selectFoodItem+` WHERE id = $1`, id).
		Scan(&it.ID, &it.RestaurantID, &it.CategoryID, &it.FoodItemName, &it.Description, &it.Price, &it.IsAvailable, &it.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *MenuRepository) GetFoodItemsByRestaurant(restaurantID int) ([]*model.FoodItem, error) {
	log := logger.Log.WithField("restaurant_id", restaurantID)
	log.Info("Executing query to get food items by restaurant")
	return r.queryFoodItems(log, selectFoodItem+` WHERE restaurant_id = $1 ORDER BY food_item_name`, restaurantID)
}

func (r *MenuRepository) GetFoodItemsByCategory(categoryID int) ([]*model.FoodItem, error) {
	log := logger.Log.WithField("category_id", categoryID)
	log.Info("Executing query to get food items by category")
	return r.queryFoodItems(log, selectFoodItem+` WHERE category_id = $1 ORDER BY food_item_name`, categoryID)
}

func (r *MenuRepository) GetFoodItemImage(id int) ([]byte, error) {
	var image []byte
	if err := r.DB.QueryRow(`SELECT food_item_image FROM food_items WHERE id = $1`, id).Scan(&image); err != nil {
		return nil, err
	}
	return image, nil
}
