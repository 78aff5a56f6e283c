package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"ai-subject-explorer-be/internal/bootstrap"
	"ai-subject-explorer-be/internal/config"
	"ai-subject-explorer-be/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type menuPayload struct {
	Type         string   `json:"type"`
	MenuItems    []string `json:"menu_items"`
	Content      string   `json:"content"`
	SessionId    string   `json:"session_id"`
	CurrentDepth int      `json:"current_depth"`
	MaxMenuDepth int      `json:"max_menu_depth"`
}

type menuEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Code    string      `json:"code"`
	Data    menuPayload `json:"data"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "3000",
			Environment:        "test",
			LogFilePath:        filepath.Join(t.TempDir(), "app.log"),
			CorsAllowedOrigins: "http://localhost:5173",
		},
		Ai: config.AIConfig{
			// The static generator keeps the flow deterministic and offline.
			LLMProvider: "static",
		},
	}

	container := bootstrap.NewContainer(cfg)
	srv := server.New(cfg, container)
	return srv.GetApp()
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, menuEnvelope) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope menuEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func TestExplorerFlow(t *testing.T) {
	app := newTestApp(t)

	// 1. Create a session
	resp, created := postJSON(t, app, "/sessions", `{"topic": "Volcanoes"}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, created.Success)
	assert.Equal(t, "submenu", created.Data.Type)
	assert.Equal(t, 0, created.Data.CurrentDepth)
	assert.Equal(t, 2, created.Data.MaxMenuDepth)
	require.NotEmpty(t, created.Data.MenuItems)
	require.NotEmpty(t, created.Data.SessionId)

	sessionId := created.Data.SessionId
	rootMenu := created.Data.MenuItems

	// 2. Select a category -> content tier at depth 2 comes after depth 1
	resp, submenu := postJSON(t, app, "/menus",
		fmt.Sprintf(`{"session_id": %q, "selection": %q}`, sessionId, rootMenu[0]))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "submenu", submenu.Data.Type)
	assert.Equal(t, 1, submenu.Data.CurrentDepth)
	assert.Empty(t, submenu.Data.Content)
	require.NotEmpty(t, submenu.Data.MenuItems)

	// 3. Select again -> depth reaches the limit, content is generated
	resp, content := postJSON(t, app, "/menus",
		fmt.Sprintf(`{"session_id": %q, "selection": %q}`, sessionId, submenu.Data.MenuItems[0]))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "content", content.Data.Type)
	assert.Equal(t, 2, content.Data.CurrentDepth)
	assert.NotEmpty(t, content.Data.Content)
	require.NotEmpty(t, content.Data.MenuItems) // further topics

	// 4. Go back -> the cached depth-1 menu, verbatim
	resp, back := postJSON(t, app, "/go_back", fmt.Sprintf(`{"session_id": %q}`, sessionId))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "submenu", back.Data.Type)
	assert.Equal(t, 1, back.Data.CurrentDepth)
	assert.Equal(t, submenu.Data.MenuItems, back.Data.MenuItems)
	assert.Empty(t, back.Data.Content)

	// 5. Return to main menu -> the root menu as generated at creation
	resp, main := postJSON(t, app, "/main_menu", fmt.Sprintf(`{"session_id": %q}`, sessionId))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "submenu", main.Data.Type)
	assert.Equal(t, 0, main.Data.CurrentDepth)
	assert.Equal(t, rootMenu, main.Data.MenuItems)

	// 6. Go back at root -> 400 AT_ROOT_LEVEL
	resp, rootErr := postJSON(t, app, "/go_back", fmt.Sprintf(`{"session_id": %q}`, sessionId))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.False(t, rootErr.Success)
	assert.Equal(t, "AT_ROOT_LEVEL", rootErr.Code)
}

func TestExplorerFlow_Errors(t *testing.T) {
	app := newTestApp(t)

	t.Run("unknown session", func(t *testing.T) {
		resp, envelope := postJSON(t, app, "/menus", `{"session_id": "missing", "selection": "x"}`)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.False(t, envelope.Success)
		assert.Equal(t, "SESSION_NOT_FOUND", envelope.Code)
	})

	t.Run("missing topic", func(t *testing.T) {
		resp, envelope := postJSON(t, app, "/sessions", `{}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.False(t, envelope.Success)
		assert.Equal(t, "VALIDATION_ERROR", envelope.Code)
	})

	t.Run("selection not in menu", func(t *testing.T) {
		_, created := postJSON(t, app, "/sessions", `{"topic": "Jazz"}`)
		resp, envelope := postJSON(t, app, "/menus",
			fmt.Sprintf(`{"session_id": %q, "selection": "Not A Real Option"}`, created.Data.SessionId))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_SELECTION", envelope.Code)
	})
}

func TestLivenessEndpoint(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "ok", envelope.Data.Status)
}
