// file: repository/cart_repository_test.go

package repository

import (
	"food-storefront/model"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_AddOrIncrement(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlMock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (user_id, food_item_id) DO UPDATE`)).
		WithArgs(21, 3, 7, 2, 4.5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "quantity"}).AddRow(30, 5))

	line := &model.CartItem{UserID: 21, RestaurantID: 3, FoodItemID: 7, Quantity: 2, Price: 4.5}
	require.NoError(t, NewCartRepository(db).AddOrIncrement(line))

	assert.Equal(t, 30, line.ID)
	assert.Equal(t, 5, line.Quantity)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestCartRepository_GetCartForUpdate(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE OF c`)).WithArgs(21).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "restaurant_id", "food_item_id", "food_item_name", "quantity", "price"}).
			AddRow(30, 21, 3, 7, "Dosa", 2, 4.5))
	sqlMock.ExpectExec(regexp.QuoteMeta(`DELETE FROM cart_items WHERE user_id = $1`)).WithArgs(21).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectCommit()

	repo := NewCartRepository(db)
	tx, err := db.Begin()
	require.NoError(t, err)

	cart, err := repo.GetCartForUpdate(tx, 21)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "Dosa", cart[0].FoodItemName)

	require.NoError(t, repo.ClearCart(tx, 21))
	require.NoError(t, tx.Commit())
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
