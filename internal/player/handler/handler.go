// Package handler provides HTTP handlers for player endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	playerModel "github.com/dailygator/dailygator/internal/player/model"
	"github.com/dailygator/dailygator/internal/player/service"
)

// Handler handles HTTP requests for player endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new player handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Get handles GET /player/get request.
// @Summary Get a player with its team name
// @Tags Players
// @Produce json
// @Param id query int true "Player ID"
// @Success 200 {object} playerModel.PlayerResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid id parameter"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Failure 500 {object} ErrorResponse
// @Router /player/get [get]
func (h *Handler) Get(c *gin.Context) {
	raw := c.Query("id")
	if raw == "" {
		errorResponse(c, "INVALID_REQUEST", "id parameter is required", http.StatusBadRequest)
		return
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "id must be an integer", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, playerModel.ErrPlayerNotFound) {
			errorResponse(c, "NOT_FOUND", "player not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, playerModel.ErrInvalidPlayerID) {
			errorResponse(c, "INVALID_REQUEST", "id must be positive", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error getting player", "id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
