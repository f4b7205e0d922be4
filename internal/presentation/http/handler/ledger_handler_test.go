package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/billing-api/internal/application/service"
	"github.com/sangkips/billing-api/internal/domain/entity"
	"github.com/sangkips/billing-api/internal/infrastructure/repository"
	"github.com/sangkips/billing-api/internal/presentation/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.MenuItem{}, &entity.Order{}, &entity.IdempotencyKey{}))
	require.NoError(t, db.Create(&entity.MenuItem{Name: "Tea", UnitPrice: 2000}).Error)

	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	ledgerService := service.NewLedgerService(menuRepo, "BN")
	orderService := service.NewOrderService(orderRepo, ledgerService)

	ledgerHandler := NewLedgerHandler(ledgerService)
	orderHandler := NewOrderHandler(orderService)

	router := gin.New()
	router.GET("/ledger", ledgerHandler.Get)
	router.POST("/ledger/lines", ledgerHandler.AddLine)
	router.DELETE("/ledger/lines", ledgerHandler.RemoveLines)
	router.POST("/ledger/clear", ledgerHandler.Clear)
	router.POST("/orders", middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: idempotencyRepo,
	}), orderHandler.Commit)

	return router, db
}

func doJSON(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLedgerHandler_AddLine(t *testing.T) {
	router, _ := setupRouter(t)

	t.Run("adds a menu item and returns the new snapshot", func(t *testing.T) {
		w := doJSON(router, "POST", "/ledger/lines", `{"item":"Tea","quantity":3}`, nil)
		assert.Equal(t, http.StatusCreated, w.Code)

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				BillNumber string  `json:"bill_number"`
				Total      float64 `json:"total"`
				Lines      []struct {
					Name     string `json:"name"`
					Quantity int    `json:"quantity"`
				} `json:"lines"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Regexp(t, `^BN-\d{4}$`, body.Data.BillNumber)
		assert.Equal(t, 60.0, body.Data.Total)
		require.Len(t, body.Data.Lines, 1)
		assert.Equal(t, "Tea", body.Data.Lines[0].Name)
	})

	t.Run("rejects items not on the menu", func(t *testing.T) {
		w := doJSON(router, "POST", "/ledger/lines", `{"item":"Pizza","quantity":1}`, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("rejects malformed bodies", func(t *testing.T) {
		w := doJSON(router, "POST", "/ledger/lines", `{"item":"Tea"}`, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLedgerHandler_RemoveLines(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(router, "DELETE", "/ledger/lines", `{"ids":[]}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "empty selection must be rejected")
}

func TestOrderHandler_CommitIdempotency(t *testing.T) {
	router, db := setupRouter(t)

	w := doJSON(router, "POST", "/ledger/lines", `{"item":"Tea","quantity":2}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	headers := map[string]string{"Idempotency-Key": "till-1-press-1"}

	first := doJSON(router, "POST", "/orders", `{"payment_type":"Cash"}`, headers)
	require.Equal(t, http.StatusCreated, first.Code)

	// Same key again: the stored response is replayed, nothing is
	// persisted a second time.
	second := doJSON(router, "POST", "/orders", `{"payment_type":"Cash"}`, headers)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	var rowCount int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&rowCount).Error)
	assert.Equal(t, int64(1), rowCount)
}

func TestLedgerHandler_Clear(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(router, "POST", "/ledger/lines", `{"item":"Tea","quantity":1}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, "POST", "/ledger/clear", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/ledger", "", nil)
	var body struct {
		Data struct {
			Lines []any   `json:"lines"`
			Total float64 `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Data.Lines)
	assert.Equal(t, 0.0, body.Data.Total)
}
