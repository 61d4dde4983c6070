// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	teamModel "github.com/dailygator/dailygator/internal/team/model"
	"github.com/dailygator/dailygator/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /team/list request.
// @Summary List all teams
// @Tags Teams
// @Produce json
// @Success 200 {object} map[string][]teamModel.Team
// @Failure 500 {object} ErrorResponse
// @Router /team/list [get]
func (h *Handler) List(c *gin.Context) {
	teams, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing teams", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"teams": teams,
	})
}

// Get handles GET /team/get request.
// @Summary Get a team with its roster
// @Tags Teams
// @Produce json
// @Param name query string true "Team Name"
// @Success 200 {object} teamModel.TeamResponse
// @Failure 400 {object} ErrorResponse "Missing name parameter"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse
// @Router /team/get [get]
func (h *Handler) Get(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		errorResponse(c, "INVALID_REQUEST", "name parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Get(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error getting team", "name", name, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Rank handles GET /team/rank request.
// @Summary Get a team's leaderboard position
// @Tags Teams
// @Produce json
// @Param name query string true "Team Name"
// @Success 200 {object} teamModel.TeamRankResponse
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /team/rank [get]
func (h *Handler) Rank(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		errorResponse(c, "INVALID_REQUEST", "name parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Rank(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error getting team rank", "name", name, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MVP handles GET /team/mvp request.
// @Summary Get a team's most valuable player
// @Tags Teams
// @Produce json
// @Param name query string true "Team Name"
// @Success 200 {object} teamModel.TeamMVPResponse
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /team/mvp [get]
func (h *Handler) MVP(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		errorResponse(c, "INVALID_REQUEST", "name parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.MVP(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error getting team MVP", "name", name, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
