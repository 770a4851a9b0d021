package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"larder/internal/infrastructure/config"
	"larder/internal/infrastructure/migration"
	sharedConfig "larder/internal/shared/config"
	"larder/internal/shared/logger"
)

func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A :memory: database exists per connection, so the pool must stay at
	// one connection.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migration.Run(gdb))

	router := NewRouter(gdb, logger.NewLogger())
	router.SetupRoutes(&config.Config{
		Server: sharedConfig.ServerConfig{AllowedOrigins: []string{"*"}},
	})
	return router.Engine()
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

func assertErrorMessage(t *testing.T, w *httptest.ResponseRecorder, code int, message string) {
	t.Helper()

	require.Equal(t, code, w.Code, w.Body.String())
	payload := decodeBody(t, w)
	assert.Equal(t, message, payload["message"])
}

func TestHealthEndpoint(t *testing.T) {
	engine := setupTestServer(t)

	w := doRequest(t, engine, "GET", "/health", "")
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestHouseholdAPI(t *testing.T) {
	engine := setupTestServer(t)

	t.Run("GET creates the default household on first access", func(t *testing.T) {
		w := doRequest(t, engine, "GET", "/api/household", "")
		require.Equal(t, 200, w.Code)

		payload := decodeBody(t, w)
		assert.Equal(t, "Household", payload["name"])
		assert.True(t, strings.HasPrefix(payload["id"].(string), "hh_"))
		assert.Len(t, payload, 2)
	})

	t.Run("PUT renames with trimming", func(t *testing.T) {
		w := doRequest(t, engine, "PUT", "/api/household", `{"name":"  Weekend Crew "}`)
		require.Equal(t, 200, w.Code)
		assert.Equal(t, "Weekend Crew", decodeBody(t, w)["name"])

		w = doRequest(t, engine, "GET", "/api/household", "")
		require.Equal(t, 200, w.Code)
		assert.Equal(t, "Weekend Crew", decodeBody(t, w)["name"])
	})

	t.Run("PUT validation", func(t *testing.T) {
		assertErrorMessage(t, doRequest(t, engine, "PUT", "/api/household", `{"name":`), 400, "Invalid JSON body")
		assertErrorMessage(t, doRequest(t, engine, "PUT", "/api/household", `[1,2]`), 400, "Body must be an object")
		assertErrorMessage(t, doRequest(t, engine, "PUT", "/api/household", `{}`), 400, "name must be a string")
		assertErrorMessage(t, doRequest(t, engine, "PUT", "/api/household", `{"name":"   "}`), 400, "name cannot be empty")
	})
}

func TestIngredientsAPI(t *testing.T) {
	engine := setupTestServer(t)

	t.Run("POST creates with trimming", func(t *testing.T) {
		w := doRequest(t, engine, "POST", "/api/ingredients", `{"name":" Sugar ","unit":" g "}`)
		require.Equal(t, 201, w.Code, w.Body.String())

		payload := decodeBody(t, w)
		assert.Equal(t, "Sugar", payload["name"])
		assert.Equal(t, "g", payload["unit"])
		assert.True(t, strings.HasPrefix(payload["id"].(string), "ing_"))
	})

	t.Run("duplicate name is rejected case-insensitively", func(t *testing.T) {
		w := doRequest(t, engine, "POST", "/api/ingredients", `{"name":" sugar ","unit":"kg"}`)
		assertErrorMessage(t, w, 409, "Ingredient name already exists")
	})

	t.Run("POST validation order", func(t *testing.T) {
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/ingredients", `{"unit":"g"}`), 400, "name must be a string")
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/ingredients", `{"name":"Salt"}`), 400, "unit must be a string")
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/ingredients", `{"name":" ","unit":"g"}`), 400, "name cannot be empty")
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/ingredients", `{"name":"Salt","unit":" "}`), 400, "unit cannot be empty")
	})

	t.Run("GET lists sorted by name", func(t *testing.T) {
		w := doRequest(t, engine, "POST", "/api/ingredients", `{"name":"Butter","unit":"g"}`)
		require.Equal(t, 201, w.Code)

		w = doRequest(t, engine, "GET", "/api/ingredients", "")
		require.Equal(t, 200, w.Code)

		payload := decodeBody(t, w)
		list := payload["ingredients"].([]interface{})
		require.Len(t, list, 2)
		assert.Equal(t, "Butter", list[0].(map[string]interface{})["name"])
		assert.Equal(t, "Sugar", list[1].(map[string]interface{})["name"])
	})
}

func TestAssistantAPI(t *testing.T) {
	engine := setupTestServer(t)

	w := doRequest(t, engine, "GET", "/api/assistant", "")
	require.Equal(t, 200, w.Code)

	payload := decodeBody(t, w)
	assert.Equal(t, false, payload["enabled"])
	assert.Equal(t, "disabled_by_config", payload["reason"])
	assert.Nil(t, payload["value"])
}
