// Package router provides tournament module routes registration.
package router

import (
	"math/rand"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	matchRepo "github.com/dailygator/dailygator/internal/match/repository"
	playerRepo "github.com/dailygator/dailygator/internal/player/repository"
	teamRepo "github.com/dailygator/dailygator/internal/team/repository"
	"github.com/dailygator/dailygator/internal/tournament/handler"
	"github.com/dailygator/dailygator/internal/tournament/service"
)

// RegisterRoutes registers tournament module routes and returns the service
// so the scheduler can share it.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rng *rand.Rand,
	cache service.Invalidator,
	logger *zap.SugaredLogger,
) service.Service {
	svc := service.New(
		teamRepo.New(db),
		playerRepo.New(db),
		matchRepo.New(db),
		db,
		rng,
		cache,
		logger,
	)
	h := handler.New(svc, logger)

	r.POST("/tournament/run", h.Run)
	r.GET("/tournament/bracket", h.Bracket)

	return svc
}
