package handler

import (
	"food-storefront/common"
	"food-storefront/model"
	"food-storefront/service"
	"net/http"
	"strconv"
)

type CartHandler struct {
	service *service.CartService
}

func NewCartHandler(service *service.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// AddToCart godoc
// @Summary      Add a food item to the cart
// @Description  Adding an item already in the cart increases its quantity. A cart only holds items from one restaurant.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        item body model.AddToCartRequest true "Item and quantity"
// @Success      201  {object}  model.CartItem
// @Failure      400  {object}  common.AppError
// @Failure      404  {object}  common.AppError "Food item not found"
// @Failure      409  {object}  common.AppError "Cart holds items from another restaurant"
// @Router       /api/cart [post]
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) *common.AppError {
	session, appErr := sessionOrError(r)
	if appErr != nil {
		return appErr
	}

	var req model.AddToCartRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	line, err := h.service.AddToCart(session, req)
	if err != nil {
		switch err {
		case service.ErrFoodItemNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		case service.ErrFoodItemUnavailable:
			return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
		case service.ErrCartRestaurantMismatch:
			return common.NewAppError(http.StatusConflict, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not add item to cart", err)
		}
	}

	writeJSON(w, http.StatusCreated, line)
	return nil
}

// GetCart godoc
// @Summary      The caller's cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   model.CartItem
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) *common.AppError {
	session, appErr := sessionOrError(r)
	if appErr != nil {
		return appErr
	}

	cart, err := h.service.GetCart(session.UserID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve cart", err)
	}

	writeJSON(w, http.StatusOK, cart)
	return nil
}

// ChangeQuantity godoc
// @Summary      Change the quantity of a cart line
// @Description  Adds quantityChange to the line. A resulting quantity of zero or less removes it and answers 204.
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        cartId          path  int true "Cart line ID"
// @Param        quantityChange  query int true "Signed change"
// @Success      200  {object}  model.CartItem
// @Success      204
// @Failure      400  {object}  common.AppError
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/cart/{cartId} [put]
func (h *CartHandler) ChangeQuantity(w http.ResponseWriter, r *http.Request) *common.AppError {
	session, appErr := sessionOrError(r)
	if appErr != nil {
		return appErr
	}
	cartID, appErr := pathID(r, "cartId")
	if appErr != nil {
		return appErr
	}

	delta, err := strconv.Atoi(r.URL.Query().Get("quantityChange"))
	if err != nil || delta == 0 {
		return common.NewAppError(http.StatusBadRequest, "quantityChange must be a non-zero integer", nil)
	}

	line, err := h.service.ChangeQuantity(session, cartID, delta)
	if err != nil {
		switch err {
		case service.ErrCartItemNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		case service.ErrPermissionDenied:
			return common.NewAppError(http.StatusForbidden, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not update cart", err)
		}
	}
	if line == nil {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}

	writeJSON(w, http.StatusOK, line)
	return nil
}
