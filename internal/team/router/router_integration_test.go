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

	matchModel "github.com/dailygator/dailygator/internal/match/model"
	matchRepo "github.com/dailygator/dailygator/internal/match/repository"
	playerModel "github.com/dailygator/dailygator/internal/player/model"
	statsRepo "github.com/dailygator/dailygator/internal/statistics/repository"
	statsService "github.com/dailygator/dailygator/internal/statistics/service"
	teamModel "github.com/dailygator/dailygator/internal/team/model"
)

func intPtr(v int) *int {
	return &v
}

func setupIntegrationDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&teamModel.Team{}, &playerModel.Player{}, &matchModel.Match{})
	require.NoError(t, err)

	teams := []teamModel.Team{
		{ID: 1, Name: "aqua"},
		{ID: 2, Name: "scales"},
	}
	require.NoError(t, db.Create(&teams).Error)

	players := []playerModel.Player{
		{ID: 1, TeamID: 1, Name: "Ava", Species: "gator"},
		{ID: 2, TeamID: 1, Name: "Bo", Species: "otter"},
		{ID: 3, TeamID: 2, Name: "Cal", Species: "snake"},
	}
	require.NoError(t, db.Create(&players).Error)

	matches := []matchModel.Match{
		{Date: "2026-09-01", Rank: matchModel.RankFinal, RankIndex: 1, PlayerA: 1, PlayerB: intPtr(3), Winner: 1},
	}
	require.NoError(t, db.Create(&matches).Error)

	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop().Sugar()
	stats := statsService.New(statsRepo.New(db), matchRepo.New(db), nil, logger)

	r := gin.New()
	RegisterRoutes(r, db, stats, logger)
	return r
}

func TestIntegration_ListTeams(t *testing.T) {
	db := setupIntegrationDB(t)
	router := setupRouter(db)

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest("GET", "/team/list", nil)
	router.ServeHTTP(w, httpReq)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Teams []teamModel.Team `json:"teams"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Teams, 2)
	assert.Equal(t, "aqua", resp.Teams[0].Name)
}

func TestIntegration_GetTeam(t *testing.T) {
	db := setupIntegrationDB(t)
	router := setupRouter(db)

	t.Run("success - team with roster", func(t *testing.T) {
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("GET", "/team/get?name=aqua", nil)
		router.ServeHTTP(w, httpReq)

		require.Equal(t, http.StatusOK, w.Code)

		var resp teamModel.TeamResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "aqua", resp.Team.Name)
		require.Len(t, resp.Members, 2)
		assert.Equal(t, "Ava", resp.Members[0].Name)
	})

	t.Run("missing name", func(t *testing.T) {
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("GET", "/team/get", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("GET", "/team/get?name=nobody", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestIntegration_TeamRank(t *testing.T) {
	db := setupIntegrationDB(t)
	router := setupRouter(db)

	t.Run("success", func(t *testing.T) {
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("GET", "/team/rank?name=aqua", nil)
		router.ServeHTTP(w, httpReq)

		require.Equal(t, http.StatusOK, w.Code)

		var resp teamModel.TeamRankResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "aqua", resp.TeamName)
		assert.Equal(t, 1, resp.Rank)
	})

	t.Run("loser ranks second", func(t *testing.T) {
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("GET", "/team/rank?name=scales", nil)
		router.ServeHTTP(w, httpReq)

		require.Equal(t, http.StatusOK, w.Code)

		var resp teamModel.TeamRankResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Rank)
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("GET", "/team/rank?name=nobody", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestIntegration_TeamMVP(t *testing.T) {
	db := setupIntegrationDB(t)
	router := setupRouter(db)

	t.Run("success", func(t *testing.T) {
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("GET", "/team/mvp?name=aqua", nil)
		router.ServeHTTP(w, httpReq)

		require.Equal(t, http.StatusOK, w.Code)

		var resp teamModel.TeamMVPResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "aqua", resp.TeamName)
		assert.Equal(t, "Ava", resp.MVP.Name)
		assert.Equal(t, 8, resp.Score, "final win is worth 8")
		assert.Equal(t, 1, resp.Wins)
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("GET", "/team/mvp?name=nobody", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
