// Package handler provides HTTP handlers for tournament endpoints.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	tournamentModel "github.com/dailygator/dailygator/internal/tournament/model"
	"github.com/dailygator/dailygator/internal/tournament/service"
)

// Handler handles HTTP requests for tournament endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new tournament handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Run handles POST /tournament/run request.
// @Summary Run today's tournament bracket
// @Tags Tournament
// @Produce json
// @Success 200 {object} tournamentModel.RunResponse "Run result; already-complete is reported as success"
// @Failure 409 {object} ErrorResponse "Roster error (EMPTY_ROSTER, NO_TEAMS)"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tournament/run [post]
func (h *Handler) Run(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().UTC().Format(tournamentModel.DateFormat)
	}

	result, err := h.service.RunForDate(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, tournamentModel.ErrAlreadyRan) {
			c.JSON(http.StatusOK, tournamentModel.RunResponse{
				Success: true,
				Message: "tournament already ran for " + date,
			})
			return
		}
		if errors.Is(err, tournamentModel.ErrInvalidDate) {
			errorResponse(c, "INVALID_REQUEST", "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if errors.Is(err, tournamentModel.ErrNoTeams) {
			h.logger.Warnw("tournament run rejected", "date", date, "error", err)
			errorResponse(c, "NO_TEAMS", err.Error(), http.StatusConflict)
			return
		}
		if errors.Is(err, tournamentModel.ErrEmptyRoster) {
			h.logger.Warnw("tournament run rejected", "date", date, "error", err)
			errorResponse(c, "EMPTY_ROSTER", err.Error(), http.StatusConflict)
			return
		}
		h.logger.Errorw("error running tournament", "date", date, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, tournamentModel.RunResponse{
		Success:  true,
		Message:  "tournament complete",
		Champion: result.Champion.Name,
	})
}

// Bracket handles GET /tournament/bracket request.
// @Summary Get a date's bracket in display order
// @Tags Tournament
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today UTC"
// @Success 200 {object} tournamentModel.BracketResponse
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tournament/bracket [get]
func (h *Handler) Bracket(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().UTC().Format(tournamentModel.DateFormat)
	}

	resp, err := h.service.BracketForDate(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, tournamentModel.ErrInvalidDate) {
			errorResponse(c, "INVALID_REQUEST", "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error getting bracket", "date", date, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
