package handler

import (
	"bytes"
	"encoding/json"
	"food-storefront/model"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The handlers below are built with nil services: a request rejected by
// validation must never reach the service layer.

type errorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func withSession(req *http.Request, session model.Session) *http.Request {
	return req.WithContext(WithSession(req.Context(), session))
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, file string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != "" {
		fw, err := mw.CreateFormFile(file, "photo.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte{0x89, 'P', 'N', 'G'})
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

var owner = model.Session{UserID: 8, Role: model.RoleRestaurantOwner}

func TestRegister_RejectsInvalidForm(t *testing.T) {
	body := `{"firstName":"jo","lastName":"","email":"jo@gmail.com","password":"weak","phoneNo":"12345","role":"ADMIN"}`
	req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(body))
	rr := httptest.NewRecorder()

	ErrorHandlingMiddleware(NewAuthHandler(nil).Register)(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	got := decodeError(t, rr)
	assert.Equal(t, "Validation failed", got.Message)
	assert.Equal(t, map[string]string{
		"firstName": "Name must start with a capital letter and be at least three characters long.",
		"lastName":  "Last name is required.",
		"email":     "Email must end with @nucleusteq.com.",
		"password":  "Password must be at least 6 characters long and include at least one uppercase letter, one digit, and one special character.",
		"phoneNo":   "Phone number must start with 9, 8, 7, or 6 and contain 10 digits.",
		"role":      "Role must be either USER or RESTAURANT_OWNER.",
	}, got.Errors)
}

func TestLogin_RejectsMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(`{"email":`))
	rr := httptest.NewRecorder()

	ErrorHandlingMiddleware(NewAuthHandler(nil).Login)(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid request body", decodeError(t, rr).Message)
}

func TestCreateRestaurant_RequiresImage(t *testing.T) {
	req := multipartRequest(t, http.MethodPost, "/api/restaurants", map[string]string{
		"restaurantName":    "Spice Hub",
		"restaurantAddress": "12 MG Road",
		"contactNumber":     "9876543210",
		"description":       "North Indian",
	}, "")
	rr := httptest.NewRecorder()

	ErrorHandlingMiddleware(NewRestaurantHandler(nil).CreateRestaurant)(rr, withSession(req, owner))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, map[string]string{"restaurantImage": "Restaurant image is required"}, decodeError(t, rr).Errors)
}

func TestCreateFoodItem_RequiresImageButUpdateDoesNot(t *testing.T) {
	fields := map[string]string{
		"foodItemName": "Paneer Tikka",
		"description":  "Grilled",
		"price":        "-4",
	}

	rr := httptest.NewRecorder()
	req := multipartRequest(t, http.MethodPost, "/api/categories/5/food-items", fields, "")
	req.SetPathValue("id", "5")
	ErrorHandlingMiddleware(NewMenuHandler(nil).CreateFoodItem)(rr, withSession(req, owner))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, map[string]string{
		"price":         "Price must be a valid positive number",
		"foodItemImage": "Please upload image",
	}, decodeError(t, rr).Errors)

	rr = httptest.NewRecorder()
	req = multipartRequest(t, http.MethodPut, "/api/food-items/11", fields, "")
	req.SetPathValue("id", "11")
	ErrorHandlingMiddleware(NewMenuHandler(nil).UpdateFoodItem)(rr, withSession(req, owner))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, map[string]string{"price": "Price must be a valid positive number"}, decodeError(t, rr).Errors)
}

func TestCreateCategory_RejectsNumbers(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/restaurants/3/categories", strings.NewReader(`{"foodCategoryName":"Combo 2"}`))
	req.SetPathValue("id", "3")
	rr := httptest.NewRecorder()

	ErrorHandlingMiddleware(NewMenuHandler(nil).CreateCategory)(rr, withSession(req, owner))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, map[string]string{
		"foodCategoryName": "Category name must contain at least two alphabets and cannot include numbers",
	}, decodeError(t, rr).Errors)
}

func TestPathID_RejectsNonNumeric(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/restaurants/abc", nil)
	req.SetPathValue("id", "abc")
	rr := httptest.NewRecorder()

	ErrorHandlingMiddleware(NewRestaurantHandler(nil).GetRestaurant)(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAddAddress_ReportsEveryField(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/addresses", strings.NewReader(`{"street":"A1","city":"Pune1","state":"","country":"India","pinCode":"12345"}`))
	rr := httptest.NewRecorder()

	ErrorHandlingMiddleware(NewAddressHandler(nil).AddAddress)(rr, withSession(req, model.Session{UserID: 21, Role: model.RoleUser}))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, map[string]string{
		"street":  "Street must be between 4 and 100 characters",
		"city":    "City must contain only alphabets",
		"state":   "State is required",
		"pinCode": "Pin code must be exactly 6 digits",
	}, decodeError(t, rr).Errors)
}

func TestContact_RequiresSubjectAndText(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"subject":"  ","message":""}`))
	rr := httptest.NewRecorder()

	ErrorHandlingMiddleware(NewContactHandler(nil).Submit)(rr, withSession(req, model.Session{UserID: 21, Role: model.RoleUser}))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, map[string]string{
		"subject": "Subject is required.",
		"message": "Text is required.",
	}, decodeError(t, rr).Errors)
}

func TestCart_RejectsBadInput(t *testing.T) {
	diner := model.Session{UserID: 21, Role: model.RoleUser}

	t.Run("quantity over limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(`{"foodItemId":7,"quantity":51}`))
		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(NewCartHandler(nil).AddToCart)(rr, withSession(req, diner))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeError(t, rr).Errors, "quantity")
	})

	t.Run("missing quantityChange", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/cart/30", nil)
		req.SetPathValue("cartId", "30")
		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(NewCartHandler(nil).ChangeQuantity)(rr, withSession(req, diner))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandlers_RequireSession(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorHandlingMiddleware(NewOrderHandler(nil).ListOrders)(rr, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
