// file: service/mocks_test.go

package service

import (
	"context"
	"database/sql"
	"food-storefront/model"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(user *model.User) error {
	args := m.Called(user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}
func (m *mockUserRepo) GetUserByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) GetUserByID(id int) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type mockTokenRepo struct{ mock.Mock }

func (m *mockTokenRepo) Create(token *model.RefreshToken) error {
	return m.Called(token).Error(0)
}
func (m *mockTokenRepo) GetByTokenHash(hash string) (*model.RefreshToken, error) {
	args := m.Called(hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RefreshToken), args.Error(1)
}
func (m *mockTokenRepo) DeleteByTokenHash(hash string) error { return m.Called(hash).Error(0) }
func (m *mockTokenRepo) DeleteByUserID(userID int) error     { return m.Called(userID).Error(0) }

type mockRestaurantRepo struct{ mock.Mock }

func (m *mockRestaurantRepo) CreateRestaurant(r *model.Restaurant) error {
	args := m.Called(r)
	if args.Error(0) == nil {
		r.ID = 10
	}
	return args.Error(0)
}
func (m *mockRestaurantRepo) GetAllRestaurants() ([]*model.Restaurant, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Restaurant), args.Error(1)
}
func (m *mockRestaurantRepo) GetRestaurantByID(id int) (*model.Restaurant, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}
func (m *mockRestaurantRepo) GetRestaurantsByOwner(ownerID int) ([]*model.Restaurant, error) {
	args := m.Called(ownerID)
	return args.Get(0).([]*model.Restaurant), args.Error(1)
}
func (m *mockRestaurantRepo) GetRestaurantImage(id int) ([]byte, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type mockMenuRepo struct{ mock.Mock }

func (m *mockMenuRepo) CreateCategory(c *model.FoodCategory) error { return m.Called(c).Error(0) }
func (m *mockMenuRepo) UpdateCategoryName(id int, name string) error {
	return m.Called(id, name).Error(0)
}
func (m *mockMenuRepo) GetCategoryByID(id int) (*model.FoodCategory, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodCategory), args.Error(1)
}
func (m *mockMenuRepo) GetCategoriesByRestaurant(id int) ([]*model.FoodCategory, error) {
	args := m.Called(id)
	return args.Get(0).([]*model.FoodCategory), args.Error(1)
}
func (m *mockMenuRepo) CreateFoodItem(item *model.FoodItem) error { return m.Called(item).Error(0) }
func (m *mockMenuRepo) UpdateFoodItem(item *model.FoodItem) error { return m.Called(item).Error(0) }
func (m *mockMenuRepo) GetFoodItemByID(id int) (*model.FoodItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodItem), args.Error(1)
}
func (m *mockMenuRepo) GetFoodItemsByRestaurant(id int) ([]*model.FoodItem, error) {
	args := m.Called(id)
	return args.Get(0).([]*model.FoodItem), args.Error(1)
}
func (m *mockMenuRepo) GetFoodItemsByCategory(id int) ([]*model.FoodItem, error) {
	args := m.Called(id)
	return args.Get(0).([]*model.FoodItem), args.Error(1)
}
func (m *mockMenuRepo) GetFoodItemImage(id int) ([]byte, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type mockCartRepo struct{ mock.Mock }

func (m *mockCartRepo) GetCartByUserID(userID int) ([]*model.CartItem, error) {
	args := m.Called(userID)
	return args.Get(0).([]*model.CartItem), args.Error(1)
}
func (m *mockCartRepo) GetCartItemByID(id int) (*model.CartItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartItem), args.Error(1)
}
func (m *mockCartRepo) AddOrIncrement(item *model.CartItem) error { return m.Called(item).Error(0) }
func (m *mockCartRepo) UpdateQuantity(id, quantity int) error {
	return m.Called(id, quantity).Error(0)
}
func (m *mockCartRepo) DeleteCartItem(id int) error { return m.Called(id).Error(0) }
func (m *mockCartRepo) GetCartForUpdate(tx *sql.Tx, userID int) ([]*model.CartItem, error) {
	args := m.Called(tx, userID)
	return args.Get(0).([]*model.CartItem), args.Error(1)
}
func (m *mockCartRepo) ClearCart(tx *sql.Tx, userID int) error { return m.Called(tx, userID).Error(0) }

type mockAddressRepo struct{ mock.Mock }

func (m *mockAddressRepo) CreateAddress(a *model.Address) error { return m.Called(a).Error(0) }
func (m *mockAddressRepo) GetAddressesByUserID(userID int) ([]*model.Address, error) {
	args := m.Called(userID)
	return args.Get(0).([]*model.Address), args.Error(1)
}
func (m *mockAddressRepo) GetAddressByID(id int) (*model.Address, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Address), args.Error(1)
}

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) CreateOrder(tx *sql.Tx, o *model.Order) error {
	args := m.Called(tx, o)
	if args.Error(0) == nil {
		o.ID = 77
	}
	return args.Error(0)
}
func (m *mockOrderRepo) CreateOrderItem(tx *sql.Tx, it *model.OrderItem) error {
	return m.Called(tx, it).Error(0)
}
func (m *mockOrderRepo) GetOrdersByUserID(userID int) ([]*model.Order, error) {
	args := m.Called(userID)
	return args.Get(0).([]*model.Order), args.Error(1)
}

// mockCache is a mock implementation of ICacheClient.
type mockCache struct{ mock.Mock }

func (m *mockCache) Get(_ context.Context, key string) *redis.StringCmd {
	args := m.Called(key)
	return redis.NewStringResult(args.String(0), args.Error(1))
}
func (m *mockCache) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(key, value, expiration)
	return redis.NewStatusResult("OK", args.Error(0))
}
func (m *mockCache) Del(_ context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(keys)
	return redis.NewIntResult(int64(len(keys)), args.Error(0))
}

type mockContactRepo struct{ mock.Mock }

func (m *mockContactRepo) CreateMessage(msg *model.ContactMessage) error {
	return m.Called(msg).Error(0)
}
