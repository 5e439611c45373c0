package app_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-leave/internal/app"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func memoryConfig() app.Config {
	return app.Config{
		Port:           "0",
		StorageDriver:  app.StorageMemory,
		Notifier:       app.NotifierLog,
		RateLimitRPS:   100,
		RateLimitBurst: 100,
	}
}

type envelope struct {
	Ok   bool            `json:"ok"`
	Data json.RawMessage `json:"data"`
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestBuildApp_MemoryFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cleanup, err := app.BuildApp(r, memoryConfig())
	assert.NoError(t, err)
	defer cleanup()

	w, _ := do(t, r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/v1/leave-requests", `{"employee_id":12,"start_date":"2020-08-01","end_date":"2020-08-05","leave_type":3}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/v1/leave-requests", `{"employee_id":0,"start_date":"2020-08-01","end_date":"2020-08-05"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, r, http.MethodPut, "/api/v1/employees/12", `{"name":"Ada","email":"ada@x.test"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w, env := do(t, r, http.MethodPost, "/api/v1/leave-requests", `{"employee_id":12,"start_date":"2020-08-01","end_date":"2020-08-05","leave_type":3}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID         string `json:"id"`
		EmployeeID int64  `json:"employee_id"`
		Status     string `json:"status"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, int64(12), created.EmployeeID)
	assert.Equal(t, "PENDING", created.Status)

	w, env = do(t, r, http.MethodGet, "/api/v1/leave-requests/"+created.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Ok)
}

func TestBuildApp_InvalidDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.StorageDriver = "mongo"

	_, err := app.BuildApp(gin.New(), cfg)

	assert.Error(t, err)
}
