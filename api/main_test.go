package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mazrooa/fatoora/models"
	"github.com/mazrooa/fatoora/store"
)

func testSetupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := models.Config{
		SQLitePath: filepath.Join(t.TempDir(), "test.db"),
		JWTKey:     "testkey",
	}
	db, err := store.Open(cfg)
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return GetMainEngine(cfg, db, logger), db
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

var validUser = map[string]interface{}{
	"username":     "testuser",
	"password":     "password123",
	"email":        "testuser@example.com",
	"mobileNumber": "1234567890",
}

func createUser(t *testing.T, router *gin.Engine) uint {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/user/", validUser)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok, "create response must wrap the user record")
	return uint(user["id"].(float64))
}
