package handler

import (
	"food-storefront/common"
	"food-storefront/model"
	"food-storefront/service"
	"net/http"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	service *service.OrderService
}

func NewOrderHandler(s *service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

// PlaceOrder godoc
// @Summary      Place an order
// @Description  Turns the caller's cart into an order delivered to one of the caller's addresses, then empties the cart.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        order body model.PlaceOrderRequest true "Delivery address"
// @Success      201  {object}  model.Order
// @Failure      400  {object}  common.AppError "Bad Request (e.g., empty cart)"
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Failure      403  {object}  common.AppError "Forbidden: Address belongs to another user"
// @Failure      404  {object}  common.AppError "Address not found"
// @Failure      500  {object}  common.AppError "Internal server error while placing the order"
// @Router       /api/orders [post]
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) *common.AppError {
	session, appErr := sessionOrError(r)
	if appErr != nil {
		return appErr
	}

	var req model.PlaceOrderRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	order, err := h.service.PlaceOrder(r.Context(), session, req)
	if err != nil {
		// Map specific business logic errors to appropriate HTTP status codes.
		switch err {
		case service.ErrAddressNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		case service.ErrPermissionDenied:
			return common.NewAppError(http.StatusForbidden, err.Error(), nil)
		case service.ErrEmptyCart:
			return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not place order", err)
		}
	}

	writeJSON(w, http.StatusCreated, order)
	return nil
}

// ListOrders godoc
// @Summary      Order history
// @Description  Lists the caller's orders, newest first, with their items.
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   model.Order
// @Failure      401  {object}  common.AppError
// @Failure      500  {object}  common.AppError
// @Router       /api/orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) *common.AppError {
	session, appErr := sessionOrError(r)
	if appErr != nil {
		return appErr
	}

	orders, err := h.service.ListOrders(session.UserID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve orders", err)
	}

	writeJSON(w, http.StatusOK, orders)
	return nil
}
