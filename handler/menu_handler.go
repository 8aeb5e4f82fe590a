package handler

import (
	"food-storefront/common"
	"food-storefront/config"
	"food-storefront/model"
	"food-storefront/service"
	"net/http"
	"strconv"
)

type MenuHandler struct {
	service *service.MenuService
}

func NewMenuHandler(service *service.MenuService) *MenuHandler {
	return &MenuHandler{service: service}
}

// menuError maps menu service errors to responses.
func menuError(err error, fallback string) *common.AppError {
	switch err {
	case service.ErrRestaurantNotFound, service.ErrCategoryNotFound, service.ErrFoodItemNotFound:
		return common.NewAppError(http.StatusNotFound, err.Error(), nil)
	case service.ErrPermissionDenied:
		return common.NewAppError(http.StatusForbidden, err.Error(), nil)
	case service.ErrCategoryExists:
		return common.NewAppError(http.StatusConflict, err.Error(), nil)
	default:
		return common.NewAppError(http.StatusInternalServerError, fallback, err)
	}
}

// CreateCategory godoc
// @Summary      Add a food category
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id        path int                       true "Restaurant ID"
// @Param        category  body model.FoodCategoryRequest true "Category"
// @Success      201  {object}  model.FoodCategory
// @Failure      400  {object}  common.AppError "Validation failed"
// @Failure      403  {object}  common.AppError "Caller does not own the restaurant"
// @Failure      409  {object}  common.AppError "Category already exists"
// @Router       /api/restaurants/{id}/categories [post]
func (h *MenuHandler) CreateCategory(w http.ResponseWriter, r *http.Request) *common.AppError {
	session, appErr := sessionOrError(r)
	if appErr != nil {
		return appErr
	}
	restaurantID, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}

	var req model.FoodCategoryRequest
	if appErr := common.DecodeForm(r, &req); appErr != nil {
		return appErr
	}

	category, err := h.service.CreateCategory(r.Context(), session, restaurantID, req)
	if err != nil {
		return menuError(err, "Could not create category")
	}

	writeJSON(w, http.StatusCreated, category)
	return nil
}

// UpdateCategory godoc
// @Summary      Rename a food category
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id        path int                       true "Category ID"
// @Param        category  body model.FoodCategoryRequest true "Category"
// @Success      200  {object}  model.FoodCategory
// @Failure      400  {object}  common.AppError "Validation failed"
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Failure      409  {object}  common.AppError "Category already exists"
// @Router       /api/categories/{id} [put]
func (h *MenuHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) *common.AppError {
	session, appErr := sessionOrError(r)
	if appErr != nil {
		return appErr
	}
	categoryID, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}

	var req model.FoodCategoryRequest
	if appErr := common.DecodeForm(r, &req); appErr != nil {
		return appErr
	}

	category, err := h.service.UpdateCategory(r.Context(), session, categoryID, req)
	if err != nil {
		return menuError(err, "Could not update category")
	}

	writeJSON(w, http.StatusOK, category)
	return nil
}

// ListCategories godoc
// @Summary      List a restaurant's categories
// @Tags         menu
// @Produce      json
// @Param        id path int true "Restaurant ID"
// @Success      200  {array}   model.FoodCategory
// @Router       /restaurants/{id}/categories [get]
func (h *MenuHandler) ListCategories(w http.ResponseWriter, r *http.Request) *common.AppError {
	restaurantID, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}

	categories, err := h.service.ListCategories(r.Context(), restaurantID)
	if err != nil {
		return menuError(err, "Could not retrieve categories")
	}

	writeJSON(w, http.StatusOK, categories)
	return nil
}

// readFoodItemForm assembles a FoodItemForm from a multipart request.
func readFoodItemForm(r *http.Request, update bool) (model.FoodItemForm, *common.AppError) {
	maxBytes := config.AppConfig.Upload.MaxImageBytes
	if appErr := parseMultipart(r, maxBytes); appErr != nil {
		return model.FoodItemForm{}, appErr
	}
	image, appErr := formFile(r, "foodItemImage", maxBytes)
	if appErr != nil {
		return model.FoodItemForm{}, appErr
	}

	available := true
	if raw := r.FormValue("isAvailable"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return model.FoodItemForm{}, common.NewAppError(http.StatusBadRequest, "isAvailable must be true or false", nil)
		}
		available = parsed
	}

	return model.FoodItemForm{
		FoodItemName: r.FormValue("foodItemName"),
		Description:  r.FormValue("description"),
		Price:        r.FormValue("price"),
		IsAvailable:  available,
		Image:        image,
		Update:       update,
	}, nil
}

// CreateFoodItem godoc
// @Summary      Add a food item
// @Tags         menu
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id             path     int    true  "Category ID"
// @Param        foodItemName   formData string true  "Name"
// @Param        description    formData string true  "Description"
// @Param        price          formData string true  "Price"
// @Param        isAvailable    formData bool   false "Available, defaults to true"
// @Param        foodItemImage  formData file   true  "Image"
// @Success      201  {object}  model.FoodItem
// @Failure      400  {object}  common.AppError "Validation failed"
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/categories/{id}/food-items [post]
func (h *MenuHandler) CreateFoodItem(w http.ResponseWriter, r *http.Request) *common.AppError {
	session, appErr := sessionOrError(r)
	if appErr != nil {
		return appErr
	}
	categoryID, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}

	form, appErr := readFoodItemForm(r, false)
	if appErr != nil {
		return appErr
	}
	if appErr := common.CheckForm(form); appErr != nil {
		return appErr
	}

	item, err := h.service.CreateFoodItem(r.Context(), session, categoryID, form)
	if err != nil {
		return menuError(err, "Could not create food item")
	}

	writeJSON(w, http.StatusCreated, item)
	return nil
}

// UpdateFoodItem godoc
// @Summary      Update a food item
// @Description  Same fields as creation. The stored image is kept when no foodItemImage is uploaded.
// @Tags         menu
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id             path     int    true  "Food item ID"
// @Param        foodItemName   formData string true  "Name"
// @Param        description    formData string true  "Description"
// @Param        price          formData string true  "Price"
// @Param        isAvailable    formData bool   false "Available, defaults to true"
// @Param        foodItemImage  formData file   false "Image"
// @Success      200  {object}  model.FoodItem
// @Failure      400  {object}  common.AppError "Validation failed"
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/food-items/{id} [put]
func (h *MenuHandler) UpdateFoodItem(w http.ResponseWriter, r *http.Request) *common.AppError {
	session, appErr := sessionOrError(r)
	if appErr != nil {
		return appErr
	}
	itemID, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}

	form, appErr := readFoodItemForm(r, true)
	if appErr != nil {
		return appErr
	}
	if appErr := common.CheckForm(form); appErr != nil {
		return appErr
	}

	item, err := h.service.UpdateFoodItem(r.Context(), session, itemID, form)
	if err != nil {
		return menuError(err, "Could not update food item")
	}

	writeJSON(w, http.StatusOK, item)
	return nil
}

// ListFoodItems godoc
// @Summary      List a restaurant's food items
// @Tags         menu
// @Produce      json
// @Param        id path int true "Restaurant ID"
// @Success      200  {array}   model.FoodItem
// @Router       /restaurants/{id}/food-items [get]
func (h *MenuHandler) ListFoodItems(w http.ResponseWriter, r *http.Request) *common.AppError {
	restaurantID, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}

	items, err := h.service.ListFoodItems(r.Context(), restaurantID)
	if err != nil {
		return menuError(err, "Could not retrieve food items")
	}

	writeJSON(w, http.StatusOK, items)
	return nil
}

// ListFoodItemsByCategory godoc
// @Summary      List a category's food items
// @Tags         menu
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200  {array}   model.FoodItem
// @Failure      404  {object}  common.AppError
// @Router       /categories/{id}/food-items [get]
func (h *MenuHandler) ListFoodItemsByCategory(w http.ResponseWriter, r *http.Request) *common.AppError {
	categoryID, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}

	items, err := h.service.ListFoodItemsByCategory(categoryID)
	if err != nil {
		return menuError(err, "Could not retrieve food items")
	}

	writeJSON(w, http.StatusOK, items)
	return nil
}

// GetFoodItemImage godoc
// @Summary      Food item image
// @Tags         menu
// @Produce      octet-stream
// @Param        id path int true "Food item ID"
// @Success      200
// @Failure      404  {object}  common.AppError
// @Router       /food-items/{id}/image [get]
func (h *MenuHandler) GetFoodItemImage(w http.ResponseWriter, r *http.Request) *common.AppError {
	itemID, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}

	image, err := h.service.GetFoodItemImage(itemID)
	if err != nil {
		return menuError(err, "Could not retrieve image")
	}
	if len(image) == 0 {
		return common.NewAppError(http.StatusNotFound, "Food item has no image", nil)
	}

	writeImage(w, image)
	return nil
}
