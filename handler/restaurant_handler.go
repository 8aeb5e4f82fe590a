package handler

import (
	"food-storefront/common"
	"food-storefront/config"
	"food-storefront/model"
	"food-storefront/service"
	"net/http"
)

type RestaurantHandler struct {
	service *service.RestaurantService
}

func NewRestaurantHandler(service *service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{service: service}
}

// CreateRestaurant godoc
// @Summary      Create a restaurant
// @Description  Multipart form with restaurantName, restaurantAddress, contactNumber, description and a restaurantImage file.
// @Tags         restaurants
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        restaurantName     formData string true "Name"
// @Param        restaurantAddress  formData string true "Address"
// @Param        contactNumber      formData string true "Contact number"
// @Param        description        formData string true "Description"
// @Param        restaurantImage    formData file   true "Image"
// @Success      201  {object}  model.Restaurant
// @Failure      400  {object}  common.AppError "Validation failed"
// @Failure      403  {object}  common.AppError "Restaurant owner privileges required"
// @Router       /api/restaurants [post]
func (h *RestaurantHandler) CreateRestaurant(w http.ResponseWriter, r *http.Request) *common.AppError {
	session, appErr := sessionOrError(r)
	if appErr != nil {
		return appErr
	}

	maxBytes := config.AppConfig.Upload.MaxImageBytes
	if appErr := parseMultipart(r, maxBytes); appErr != nil {
		return appErr
	}
	image, appErr := formFile(r, "restaurantImage", maxBytes)
	if appErr != nil {
		return appErr
	}

	form := model.RestaurantForm{
		RestaurantName:    r.FormValue("restaurantName"),
		RestaurantAddress: r.FormValue("restaurantAddress"),
		ContactNumber:     r.FormValue("contactNumber"),
		Description:       r.FormValue("description"),
		Image:             image,
	}
	if appErr := common.CheckForm(form); appErr != nil {
		return appErr
	}

	restaurant, err := h.service.CreateRestaurant(r.Context(), session.UserID, form)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create restaurant", err)
	}

	writeJSON(w, http.StatusCreated, restaurant)
	return nil
}

// ListRestaurants godoc
// @Summary      List restaurants
// @Tags         restaurants
// @Produce      json
// @Success      200  {array}   model.Restaurant
// @Failure      500  {object}  common.AppError
// @Router       /restaurants [get]
func (h *RestaurantHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) *common.AppError {
	restaurants, err := h.service.ListRestaurants(r.Context())
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve restaurants", err)
	}

	writeJSON(w, http.StatusOK, restaurants)
	return nil
}

// ListOwnerRestaurants godoc
// @Summary      List the caller's restaurants
// @Tags         restaurants
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   model.Restaurant
// @Failure      403  {object}  common.AppError
// @Router       /api/owner/restaurants [get]
func (h *RestaurantHandler) ListOwnerRestaurants(w http.ResponseWriter, r *http.Request) *common.AppError {
	session, appErr := sessionOrError(r)
	if appErr != nil {
		return appErr
	}

	restaurants, err := h.service.ListOwnerRestaurants(session.UserID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve restaurants", err)
	}

	writeJSON(w, http.StatusOK, restaurants)
	return nil
}

// GetRestaurant godoc
// @Summary      Get a restaurant
// @Tags         restaurants
// @Produce      json
// @Param        id path int true "Restaurant ID"
// @Success      200  {object}  model.Restaurant
// @Failure      404  {object}  common.AppError
// @Router       /restaurants/{id} [get]
func (h *RestaurantHandler) GetRestaurant(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}

	restaurant, err := h.service.GetRestaurant(id)
	if err != nil {
		switch err {
		case service.ErrRestaurantNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not retrieve restaurant", err)
		}
	}

	writeJSON(w, http.StatusOK, restaurant)
	return nil
}

// GetRestaurantImage godoc
// @Summary      Restaurant image
// @Tags         restaurants
// @Produce      octet-stream
// @Param        id path int true "Restaurant ID"
// @Success      200
// @Failure      404  {object}  common.AppError
// @Router       /restaurants/{id}/image [get]
func (h *RestaurantHandler) GetRestaurantImage(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}

	image, err := h.service.GetRestaurantImage(id)
	if err != nil {
		switch err {
		case service.ErrRestaurantNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not retrieve image", err)
		}
	}
	if len(image) == 0 {
		return common.NewAppError(http.StatusNotFound, "Restaurant has no image", nil)
	}

	writeImage(w, image)
	return nil
}
