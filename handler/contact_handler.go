package handler

import (
	"food-storefront/common"
	"food-storefront/model"
	"food-storefront/service"
	"net/http"
)

type ContactHandler struct {
	service *service.ContactService
}

func NewContactHandler(service *service.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit godoc
// @Summary      Contact us
// @Tags         contact
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        message body model.ContactRequest true "Subject and message"
// @Success      201  {object}  model.ContactMessage
// @Failure      400  {object}  common.AppError "Validation failed"
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) *common.AppError {
	session, appErr := sessionOrError(r)
	if appErr != nil {
		return appErr
	}

	var req model.ContactRequest
	if appErr := common.DecodeForm(r, &req); appErr != nil {
		return appErr
	}

	msg, err := h.service.Submit(session, req)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not send message", err)
	}

	writeJSON(w, http.StatusCreated, msg)
	return nil
}
