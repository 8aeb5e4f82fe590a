// file: service/order_service_test.go

package service

import (
	"context"
	"errors"
	"food-storefront/model"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_PlaceOrder(t *testing.T) {
	ctx := context.Background()
	address := &model.Address{ID: 6, UserID: 21}
	cart := []*model.CartItem{
		{ID: 1, UserID: 21, RestaurantID: 3, FoodItemID: 7, Quantity: 2, Price: 4.5},
		{ID: 2, UserID: 21, RestaurantID: 3, FoodItemID: 8, Quantity: 1, Price: 10.25},
	}

	t.Run("success", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		cartRepo := new(mockCartRepo)
		addressRepo := new(mockAddressRepo)
		orderRepo := new(mockOrderRepo)

		addressRepo.On("GetAddressByID", 6).Return(address, nil).Once()
		sqlMock.ExpectBegin()
		cartRepo.On("GetCartForUpdate", mock.Anything, 21).Return(cart, nil).Once()
		orderRepo.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
			return o.TotalPrice == 19.25 && o.RestaurantID == 3 && o.Status == model.OrderStatusPlaced
		})).Return(nil).Once()
		orderRepo.On("CreateOrderItem", mock.Anything, mock.AnythingOfType("*model.OrderItem")).Return(nil).Twice()
		cartRepo.On("ClearCart", mock.Anything, 21).Return(nil).Once()
		sqlMock.ExpectCommit()

		order, err := NewOrderService(db, cartRepo, addressRepo, orderRepo).PlaceOrder(ctx, diner, model.PlaceOrderRequest{AddressID: 6})

		require.NoError(t, err)
		assert.Equal(t, 77, order.ID)
		require.Len(t, order.Items, 2)
		assert.Equal(t, 77, order.Items[0].OrderID)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
		orderRepo.AssertExpectations(t)
		cartRepo.AssertExpectations(t)
	})

	t.Run("empty cart rolls back", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		cartRepo := new(mockCartRepo)
		addressRepo := new(mockAddressRepo)
		orderRepo := new(mockOrderRepo)

		addressRepo.On("GetAddressByID", 6).Return(address, nil).Once()
		sqlMock.ExpectBegin()
		cartRepo.On("GetCartForUpdate", mock.Anything, 21).Return([]*model.CartItem{}, nil).Once()
		sqlMock.ExpectRollback()

		_, err = NewOrderService(db, cartRepo, addressRepo, orderRepo).PlaceOrder(ctx, diner, model.PlaceOrderRequest{AddressID: 6})

		assert.Equal(t, ErrEmptyCart, err)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
		orderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("order insert failure rolls back", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		cartRepo := new(mockCartRepo)
		addressRepo := new(mockAddressRepo)
		orderRepo := new(mockOrderRepo)

		addressRepo.On("GetAddressByID", 6).Return(address, nil).Once()
		sqlMock.ExpectBegin()
		cartRepo.On("GetCartForUpdate", mock.Anything, 21).Return(cart, nil).Once()
		orderRepo.On("CreateOrder", mock.Anything, mock.Anything).Return(errors.New("insert failed")).Once()
		sqlMock.ExpectRollback()

		_, err = NewOrderService(db, cartRepo, addressRepo, orderRepo).PlaceOrder(ctx, diner, model.PlaceOrderRequest{AddressID: 6})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not create order")
		assert.NoError(t, sqlMock.ExpectationsWereMet())
		cartRepo.AssertNotCalled(t, "ClearCart", mock.Anything, mock.Anything)
	})

	t.Run("address of another user", func(t *testing.T) {
		addressRepo := new(mockAddressRepo)
		addressRepo.On("GetAddressByID", 6).Return(&model.Address{ID: 6, UserID: 99}, nil).Once()

		_, err := NewOrderService(nil, nil, addressRepo, nil).PlaceOrder(ctx, diner, model.PlaceOrderRequest{AddressID: 6})

		assert.Equal(t, ErrPermissionDenied, err)
	})
}

func TestCartTotal(t *testing.T) {
	cart := []*model.CartItem{{Quantity: 3, Price: 0.1}, {Quantity: 1, Price: 0.2}}
	assert.Equal(t, 0.5, cartTotal(cart))
}
