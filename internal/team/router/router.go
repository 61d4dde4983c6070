// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	playerRepo "github.com/dailygator/dailygator/internal/player/repository"
	statsService "github.com/dailygator/dailygator/internal/statistics/service"
	"github.com/dailygator/dailygator/internal/team/handler"
	"github.com/dailygator/dailygator/internal/team/repository"
	"github.com/dailygator/dailygator/internal/team/service"
)

// RegisterRoutes registers team module routes. The statistics service is
// shared so rank and MVP resolve against the same cached leaderboards.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, stats statsService.Service, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, playerRepo.New(db), stats, logger)
	h := handler.New(svc, logger)

	r.GET("/team/list", h.List)
	r.GET("/team/get", h.Get)
	r.GET("/team/rank", h.Rank)
	r.GET("/team/mvp", h.MVP)
}
