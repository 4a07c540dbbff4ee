package handler

import (
	"net/http"

	"github.com/engrjeff/kapenatinph/internal/dto"
	"github.com/engrjeff/kapenatinph/internal/middleware"
	"github.com/engrjeff/kapenatinph/internal/service"

	"github.com/gin-gonic/gin"
)

type StoreHandler struct{ svc service.StoreService }

func NewStoreHandler(svc service.StoreService) *StoreHandler {
	return &StoreHandler{svc: svc}
}

// Onboard POST /v1/store/onboard
func (h *StoreHandler) Onboard(c *gin.Context) {
	var req dto.OnboardRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Onboard(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Success(dto.IntentCreate, resp))
}

// Get GET /v1/store
func (h *StoreHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update PUT /v1/store
func (h *StoreHandler) Update(c *gin.Context) {
	var req dto.UpdateStoreRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(dto.IntentUpdate, resp))
}
