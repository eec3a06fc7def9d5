package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"complyapi/internal/http/middleware"
	serviceMocks "complyapi/internal/service/mocks"
)

func TestCheckText(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.CORS())
	app.Post("/check-text", CheckText())

	tests := []struct {
		name        string
		contentType string
		body        io.Reader
	}{
		{"empty body", "", nil},
		{"json", fiber.MIMEApplicationJSON, strings.NewReader(`{"text":"Guaranteed 20% returns"}`)},
		{"malformed json", fiber.MIMEApplicationJSON, strings.NewReader(`{"text":`)},
		{"broken multipart", "multipart/form-data; boundary=xyz", strings.NewReader("--nope")},
		{"binary", "application/octet-stream", bytes.NewReader([]byte{0x00, 0xff, 0x10})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/check-text", tt.body)
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			req.Header.Set("Origin", "https://editor.example.com")
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
			body, _ := io.ReadAll(resp.Body)
			assert.JSONEq(t, `{"success":true}`, string(body))
		})
	}

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/check-text", nil)
		req.Header.Set("Origin", "https://editor.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	})
}

func TestCheckText_RejectedBeforeRouting(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(), BodyLimit: 1024})

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"oversized check-text body", fiber.MethodPost, "/check-text", http.StatusOK},
		{"other route keeps the envelope", fiber.MethodPost, "/v1/compliance/check", http.StatusRequestEntityTooLarge},
		{"get check-text is not acknowledged", fiber.MethodGet, "/check-text", http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fctx := &fasthttp.RequestCtx{}
			fctx.Request.Header.SetMethod(tt.method)
			fctx.Request.SetRequestURI(tt.path)
			c := app.AcquireCtx(fctx)
			defer app.ReleaseCtx(c)

			require.NoError(t, ErrorHandler()(c, fiber.ErrRequestEntityTooLarge))

			assert.Equal(t, tt.wantStatus, fctx.Response.StatusCode())
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"success":true}`, string(fctx.Response.Body()))
				assert.Equal(t, "*", string(fctx.Response.Header.Peek("Access-Control-Allow-Origin")))
			}
		})
	}
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db, true))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body healthResponse
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, healthResponse{Status: "ok", LLM: true, Database: "up"}, body)
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})

	t.Run("database disabled", func(t *testing.T) {
		app := fiber.New()
		app.Get("/health", HealthCheck(nil, false))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body healthResponse
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, healthResponse{Status: "ok", LLM: false, Database: "disabled"}, body)
	})

	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	app.Get("/fail/:code", func(c *fiber.Ctx) error {
		switch c.Params("code") {
		case "413":
			return fiber.ErrRequestEntityTooLarge
		case "501":
			return fiber.ErrNotImplemented
		default:
			return errors.New("boom: secret detail")
		}
	})

	tests := []struct {
		path       string
		wantStatus int
		wantCode   string
	}{
		{"/fail/413", http.StatusRequestEntityTooLarge, "CONTENT_TOO_LARGE"},
		{"/fail/501", http.StatusNotImplemented, "NOT_IMPLEMENTED"},
		{"/fail/other", http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set(middleware.RequestIDHeader, "rid-1")
			resp, _ := app.Test(req)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			raw, _ := io.ReadAll(resp.Body)
			assert.NotContains(t, string(raw), "secret detail")

			var body errorPayload
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, "rid-1", body.RequestID)
		})
	}
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	mockSvc := new(serviceMocks.MockComplianceService)
	RegisterRoutes(app, Deps{Compliance: mockSvc, Metrics: promhttp.Handler()})

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		// Health endpoint only allows GET
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "METHOD_NOT_ALLOWED", res.Error.Code)
	})

	t.Run("check-text registered", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/check-text", strings.NewReader("anything"))
		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("metrics exposed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), "go_goroutines")
	})
}
