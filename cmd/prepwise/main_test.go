package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/prepwise-api/internal/config"
	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/platform/logger"
	"github.com/phrazzld/prepwise-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:            0,
			LogLevel:        "debug",
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			ShutdownTimeout: time.Second,
		},
		LLM: config.LLMConfig{
			ModelName:           "gemini-2.5-flash",
			JSONModelName:       "gemini-2.5-flash",
			MaxRetries:          0,
			RetryInitialDelay:   time.Millisecond,
			ChatMaxOutputTokens: 100,
		},
		Cache: config.CacheConfig{PlansTTL: time.Minute},
	}
}

// isolateEnv keeps the developer's environment and config files out of a
// command test.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, name := range []string{
		"PREPWISE_DATABASE_URL", "PREPWISE_LLM_API_KEY", "GOOGLE_GENAI_API_KEY", "GEMINI_API_KEY",
		"PREPWISE_SERVER_LOG_FILE",
	} {
		t.Setenv(name, "")
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	assert.Subset(t, names, []string{"serve", "migrate", "plans"})
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestMigrateCommand_Args(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown command", []string{"migrate", "sideways"}},
		{"missing command", []string{"migrate"}},
		{"too many", []string{"migrate", "up", "down"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root := newRootCmd()
			root.SetArgs(tc.args)
			root.SetOut(&strings.Builder{})
			root.SetErr(&strings.Builder{})

			assert.Error(t, root.ExecuteContext(context.Background()))
		})
	}
}

func TestCommands_RequireDatabase(t *testing.T) {
	isolateEnv(t)

	for _, args := range [][]string{{"migrate", "up"}, {"plans", "seed"}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			root := newRootCmd()
			root.SetArgs(args)

			err := root.ExecuteContext(context.Background())

			assert.ErrorIs(t, err, errNoDatabase)
		})
	}
}

func TestCommands_InvalidConfigFile(t *testing.T) {
	isolateEnv(t)

	root := newRootCmd()
	root.SetArgs([]string{"serve", "--config", "/nonexistent/prepwise.yaml"})

	err := root.ExecuteContext(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApplication_WithoutDatabaseOrModel(t *testing.T) {
	l, buf := logger.NewTestLogger()
	app := newApplication(context.Background(), testConfig(), l)
	defer app.cleanup()

	assert.Nil(t, app.db)
	assert.Contains(t, buf.String(), `"severity":"critical"`)

	srv := httptest.NewServer(app.router())
	defer srv.Close()

	t.Run("health", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/health")
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("plans degrade to defaults", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/plans")
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var plans []domain.Plan
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&plans))
		assert.Len(t, plans, len(service.DefaultPlans()))
	})

	t.Run("generation fails without a key", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/ai/quiz", "application/json", strings.NewReader(`{"topic":"go"}`))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body["error"], "not configured")
	})
}

func TestApplication_RunStopsOnCancel(t *testing.T) {
	l, _ := logger.NewTestLogger()
	app := newApplication(context.Background(), testConfig(), l)
	defer app.cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
