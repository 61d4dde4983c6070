// Package router provides player module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dailygator/dailygator/internal/player/handler"
	"github.com/dailygator/dailygator/internal/player/repository"
	"github.com/dailygator/dailygator/internal/player/service"
	teamRepo "github.com/dailygator/dailygator/internal/team/repository"
)

// RegisterRoutes registers player module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, teamRepo.New(db), logger)
	h := handler.New(svc, logger)

	r.GET("/player/get", h.Get)
}
