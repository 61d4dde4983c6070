package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	playerModel "github.com/dailygator/dailygator/internal/player/model"
	teamModel "github.com/dailygator/dailygator/internal/team/model"
)

func setupIntegrationDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&teamModel.Team{}, &playerModel.Player{})
	require.NoError(t, err)

	require.NoError(t, db.Create(&teamModel.Team{ID: 1, Name: "aqua"}).Error)
	require.NoError(t, db.Create(&playerModel.Player{
		ID: 1, TeamID: 1, Name: "Ava", Species: "gator", Bio: "keeps the pond tidy",
	}).Error)

	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, db, zap.NewNop().Sugar())
	return r
}

func TestIntegration_GetPlayer(t *testing.T) {
	db := setupIntegrationDB(t)
	router := setupRouter(db)

	t.Run("success - player with team name", func(t *testing.T) {
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("GET", "/player/get?id=1", nil)
		router.ServeHTTP(w, httpReq)

		require.Equal(t, http.StatusOK, w.Code)

		var resp playerModel.PlayerResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Ava", resp.Player.Name)
		assert.Equal(t, "gator", resp.Player.Species)
		assert.Equal(t, "aqua", resp.TeamName)
	})

	t.Run("missing id", func(t *testing.T) {
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("GET", "/player/get", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("GET", "/player/get?id=abc", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("GET", "/player/get?id=99", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
