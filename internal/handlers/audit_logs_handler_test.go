package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newAuditRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/audit-logs", NewAuditLogsHandler(db, zap.NewNop()).List)
	return r, mock
}

func TestAuditLogsHandler_List(t *testing.T) {
	r, mock := newAuditRouter(t)
	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "audit_logs" WHERE action = \$1`).
		WithArgs("appointment_created").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "audit_logs" WHERE action = \$1 ORDER BY created_at DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "action", "entity", "entity_id", "metadata", "created_at"}).
			AddRow(7, "appointment_created", "appointment", "ap-1", `{"time":"9:00 AM"}`, created))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audit-logs?action=appointment_created&limit=500", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Page  int   `json:"page"`
		Limit int   `json:"limit"`
		Total int64 `json:"total"`
		Logs  []struct {
			ID       uint   `json:"id"`
			EntityID string `json:"entity_id"`
		} `json:"logs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Page)
	assert.Equal(t, 50, body.Limit)
	assert.EqualValues(t, 1, body.Total)
	require.Len(t, body.Logs, 1)
	assert.Equal(t, "ap-1", body.Logs[0].EntityID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditLogsHandler_CountFailure(t *testing.T) {
	r, mock := newAuditRouter(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "audit_logs"`).WillReturnError(errors.New("db down"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audit-logs", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "audit_count_failed")
}
