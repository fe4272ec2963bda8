package fiber_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/GoPowerDNS-Admin/go-bsnav/internal/logger/adapter/fiber"

	"github.com/GoPowerDNS-Admin/go-bsnav/internal/logger"
)

// expectedLoggerJSONFormat implements the access log json format.
type expectedLoggerJSONFormat struct {
	IP     net.IP `json:"IP"`
	Status int    `json:"status"`
	URI    string `json:"URI"`
	Method string `json:"method"`
	Host   string `json:"host"`
}

var consoleAccessLog = logger.Log{
	EnableAccessLogToConsole: true,
	Console:                  logger.Console{Enabled: true},
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		config     adapter.Config
		targetPath string
		want       *expectedLoggerJSONFormat
	}{
		{
			name:       "empty no output at all",
			targetPath: "/",
		},
		{
			name:       "console enabled but access log to console disabled",
			targetPath: "/",
			config: adapter.Config{
				Config: logger.Log{Console: logger.Console{Enabled: true}},
			},
		},
		{
			name:       "get / log to console json",
			targetPath: "/",
			config:     adapter.Config{Config: consoleAccessLog},
			want: &expectedLoggerJSONFormat{
				IP:     net.ParseIP("0.0.0.0"),
				Status: 200,
				URI:    "/",
				Method: fiber.MethodGet,
				Host:   "example.com",
			},
		},
		{
			name:       "get with params",
			targetPath: "/docs/intro?q=navbar",
			config:     adapter.Config{Config: consoleAccessLog},
			want: &expectedLoggerJSONFormat{
				IP:     net.ParseIP("0.0.0.0"),
				Status: 200,
				URI:    "/docs/intro?q=navbar",
				Method: fiber.MethodGet,
				Host:   "example.com",
			},
		},
		{
			name:       "unknown route",
			targetPath: "/missing",
			config:     adapter.Config{Config: consoleAccessLog},
			want: &expectedLoggerJSONFormat{
				IP:     net.ParseIP("0.0.0.0"),
				Status: 404,
				URI:    "/missing",
				Method: fiber.MethodGet,
				Host:   "example.com",
			},
		},
		{
			name:       "skipped path",
			targetPath: "/metrics",
			config:     adapter.Config{Config: consoleAccessLog, SkipPaths: []string{"/metrics"}},
		},
		{
			name:       "next skips middleware",
			targetPath: "/",
			config: adapter.Config{
				Config: consoleAccessLog,
				Next:   func(*fiber.Ctx) bool { return true },
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := testMiddlewareHelper(t, tt.targetPath, tt.config)
			require.NoError(t, err)

			if tt.want == nil {
				assert.Empty(t, output)
				return
			}

			require.NotEmpty(t, output)

			var decoded expectedLoggerJSONFormat
			require.NoError(t, json.Unmarshal([]byte(output), &decoded))

			assert.Equal(t, tt.want.Host, decoded.Host)
			assert.Equal(t, tt.want.Method, decoded.Method)
			assert.Equal(t, tt.want.Status, decoded.Status)
			assert.Equal(t, tt.want.IP, decoded.IP)
			assert.Equal(t, tt.want.URI, decoded.URI)
		})
	}
}

func TestNew_AccessFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	app := fiber.New()
	app.Use(adapter.New(adapter.Config{Config: logger.Log{
		File: logger.LogFile{
			Enabled: true,
			Path:    dir,
			Access:  logger.Rotation{Name: "access.log", MaxSize: 1},
		},
	}}))
	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Performance"))

	content, err := os.ReadFile(filepath.Join(dir, "access.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"URI":"/"`)
}

func testMiddlewareHelper(t *testing.T, targetPath string, adapterConfig adapter.Config) (string, error) {
	t.Helper()

	stdout := os.Stdout
	stderr := os.Stderr

	// capture stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	os.Stderr = w

	app := fiber.New(fiber.Config{
		CaseSensitive: true,
		Immutable:     true,
	})

	app.Use(adapter.New(adapterConfig))

	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString("hello test")
	})
	app.Get("/docs/intro", func(ctx *fiber.Ctx) error {
		return ctx.SendString("intro")
	})
	app.Get("/metrics", func(ctx *fiber.Ctx) error {
		return ctx.SendString("metrics")
	})

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, targetPath, nil), 100000)
	if err != nil {
		_ = w.Close()
		os.Stdout = stdout
		os.Stderr = stderr

		return "", err
	}

	outC := make(chan string)
	// copy the output in a separate goroutine so printing can't block indefinitely
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// back to normal state
	_ = w.Close()
	os.Stdout = stdout // restoring the real stdout
	os.Stderr = stderr // restoring the real stderr
	out := <-outC

	return out, nil
}
