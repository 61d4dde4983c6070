// Package router provides statistics module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	matchRepo "github.com/dailygator/dailygator/internal/match/repository"
	"github.com/dailygator/dailygator/internal/statistics/cache"
	"github.com/dailygator/dailygator/internal/statistics/handler"
	"github.com/dailygator/dailygator/internal/statistics/repository"
	"github.com/dailygator/dailygator/internal/statistics/service"
)

// RegisterRoutes registers statistics module routes and returns the service
// so the team module can resolve ranks and MVPs.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, c *cache.Cache, logger *zap.SugaredLogger) service.Service {
	svc := service.New(repository.New(db), matchRepo.New(db), c, logger)
	h := handler.New(svc, logger)

	r.GET("/statistics/players", h.GetPlayers)
	r.GET("/statistics/teams", h.GetTeams)
	r.GET("/statistics/champion", h.GetChampion)

	return svc
}
