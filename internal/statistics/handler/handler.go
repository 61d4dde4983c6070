// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dailygator/dailygator/internal/statistics/model"
	"github.com/dailygator/dailygator/internal/statistics/service"
	tournamentModel "github.com/dailygator/dailygator/internal/tournament/model"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// parseLimit reads the optional ?limit= query parameter.
func parseLimit(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// GetPlayers handles GET /statistics/players request.
// @Summary Get the player leaderboard
// @Tags Statistics
// @Produce json
// @Param limit query int false "Truncate to top N entries"
// @Success 200 {object} model.PlayersResponse
// @Failure 500 {object} ErrorResponse
// @Router /statistics/players [get]
func (h *Handler) GetPlayers(c *gin.Context) {
	resp, err := h.service.PlayerLeaderboard(c.Request.Context(), parseLimit(c))
	if err != nil {
		h.logger.Errorw("error getting player leaderboard", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTeams handles GET /statistics/teams request.
// @Summary Get the team leaderboard
// @Tags Statistics
// @Produce json
// @Param limit query int false "Truncate to top N entries"
// @Success 200 {object} model.TeamsResponse
// @Failure 500 {object} ErrorResponse
// @Router /statistics/teams [get]
func (h *Handler) GetTeams(c *gin.Context) {
	resp, err := h.service.TeamLeaderboard(c.Request.Context(), parseLimit(c))
	if err != nil {
		h.logger.Errorw("error getting team leaderboard", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetChampion handles GET /statistics/champion request.
// @Summary Get the champion for a date
// @Tags Statistics
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today UTC"
// @Success 200 {object} model.ChampionResponse
// @Failure 404 {object} ErrorResponse "No champion for date"
// @Failure 500 {object} ErrorResponse
// @Router /statistics/champion [get]
func (h *Handler) GetChampion(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().UTC().Format(tournamentModel.DateFormat)
	}

	resp, err := h.service.ChampionForDate(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, model.ErrNoChampion) {
			errorResponse(c, "NOT_FOUND", "no champion for "+date, http.StatusNotFound)
			return
		}
		h.logger.Errorw("error getting champion", "date", date, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
