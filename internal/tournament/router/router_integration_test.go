package router

import (
	"encoding/json"
	"fmt"
	"math/rand"
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
	playerModel "github.com/dailygator/dailygator/internal/player/model"
	teamModel "github.com/dailygator/dailygator/internal/team/model"
	tournamentModel "github.com/dailygator/dailygator/internal/tournament/model"
)

func setupEmptyDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&teamModel.Team{}, &playerModel.Player{}, &matchModel.Match{})
	require.NoError(t, err)

	return db
}

func setupIntegrationDB(t *testing.T) *gorm.DB {
	db := setupEmptyDB(t)

	teams := []teamModel.Team{
		{ID: 1, Name: "aqua"},
		{ID: 2, Name: "scales"},
		{ID: 3, Name: "feathers"},
		{ID: 4, Name: "smalls"},
	}
	require.NoError(t, db.Create(&teams).Error)

	id := 0
	for teamID := 1; teamID <= 4; teamID++ {
		for i := 0; i < 2; i++ {
			id++
			player := playerModel.Player{ID: id, TeamID: teamID, Name: fmt.Sprintf("player-%d", id), Species: "gator"}
			require.NoError(t, db.Create(&player).Error)
		}
	}

	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, db, rand.New(rand.NewSource(1)), nil, zap.NewNop().Sugar())
	return r
}

func TestIntegration_RunTournament(t *testing.T) {
	t.Run("success - run then bracket round trip", func(t *testing.T) {
		db := setupIntegrationDB(t)
		router := setupRouter(db)

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/tournament/run?date=2026-09-01", nil)
		router.ServeHTTP(w, httpReq)

		require.Equal(t, http.StatusOK, w.Code)

		var runResp tournamentModel.RunResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &runResp))
		assert.True(t, runResp.Success)
		assert.Equal(t, "tournament complete", runResp.Message)
		assert.NotEmpty(t, runResp.Champion)

		w = httptest.NewRecorder()
		httpReq, _ = http.NewRequest("GET", "/tournament/bracket?date=2026-09-01", nil)
		router.ServeHTTP(w, httpReq)

		require.Equal(t, http.StatusOK, w.Code)

		var bracket tournamentModel.BracketResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bracket))
		assert.Len(t, bracket.Matches, 3, "4 entrants means 2 semis and a final")
		require.NotNil(t, bracket.Champion)
		assert.Equal(t, runResp.Champion, *bracket.Champion)
		for _, m := range bracket.Matches {
			assert.Equal(t, matchModel.Day("2026-09-01"), m.Date,
				"match dates must stay valid date query parameters")
		}
	})

	t.Run("second run reports already complete", func(t *testing.T) {
		db := setupIntegrationDB(t)
		router := setupRouter(db)

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/tournament/run?date=2026-09-01", nil)
		router.ServeHTTP(w, httpReq)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		httpReq, _ = http.NewRequest("POST", "/tournament/run?date=2026-09-01", nil)
		router.ServeHTTP(w, httpReq)

		require.Equal(t, http.StatusOK, w.Code)
		var resp tournamentModel.RunResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Contains(t, resp.Message, "already ran")
		assert.Empty(t, resp.Champion)
	})

	t.Run("invalid date rejected", func(t *testing.T) {
		db := setupIntegrationDB(t)
		router := setupRouter(db)

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/tournament/run?date=not-a-date", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
	})

	t.Run("empty roster conflict", func(t *testing.T) {
		db := setupIntegrationDB(t)
		require.NoError(t, db.Create(&teamModel.Team{ID: 5, Name: "ghosts"}).Error)
		router := setupRouter(db)

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/tournament/run?date=2026-09-01", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "EMPTY_ROSTER")
	})

	t.Run("no teams conflict", func(t *testing.T) {
		db := setupEmptyDB(t)
		router := setupRouter(db)

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/tournament/run?date=2026-09-01", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "NO_TEAMS")
	})
}

func TestIntegration_GetBracket(t *testing.T) {
	t.Run("empty day returns empty bracket", func(t *testing.T) {
		db := setupIntegrationDB(t)
		router := setupRouter(db)

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("GET", "/tournament/bracket?date=2026-09-01", nil)
		router.ServeHTTP(w, httpReq)

		require.Equal(t, http.StatusOK, w.Code)
		var resp tournamentModel.BracketResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Matches)
		assert.Nil(t, resp.Champion)
	})

	t.Run("invalid date rejected", func(t *testing.T) {
		db := setupIntegrationDB(t)
		router := setupRouter(db)

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("GET", "/tournament/bracket?date=nope", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
