package handler

import (
	"food-storefront/common"
	"food-storefront/model"
	"food-storefront/service"
	"net/http"
)

type AddressHandler struct {
	service *service.AddressService
}

func NewAddressHandler(service *service.AddressService) *AddressHandler {
	return &AddressHandler{service: service}
}

// AddAddress godoc
// @Summary      Add a delivery address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        address body model.AddressRequest true "Address"
// @Success      201  {object}  model.Address
// @Failure      400  {object}  common.AppError "Validation failed"
// @Router       /api/addresses [post]
func (h *AddressHandler) AddAddress(w http.ResponseWriter, r *http.Request) *common.AppError {
	session, appErr := sessionOrError(r)
	if appErr != nil {
		return appErr
	}

	var req model.AddressRequest
	if appErr := common.DecodeForm(r, &req); appErr != nil {
		return appErr
	}

	address, err := h.service.AddAddress(session, req)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not save address", err)
	}

	writeJSON(w, http.StatusCreated, address)
	return nil
}

// ListAddresses godoc
// @Summary      List the caller's addresses
// @Tags         addresses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   model.Address
// @Router       /api/addresses [get]
func (h *AddressHandler) ListAddresses(w http.ResponseWriter, r *http.Request) *common.AppError {
	session, appErr := sessionOrError(r)
	if appErr != nil {
		return appErr
	}

	addresses, err := h.service.ListAddresses(session.UserID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve addresses", err)
	}

	writeJSON(w, http.StatusOK, addresses)
	return nil
}
