package handler

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"

	"complyapi/docs"
	"complyapi/internal/service"
)

// Deps are the collaborators the HTTP routes are wired to.
// DB and Metrics are optional.
type Deps struct {
	DB         *sql.DB
	LLMEnabled bool
	Compliance service.ComplianceService
	Metrics    http.Handler
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, deps Deps) {
	app.Post(CheckTextPath, CheckText())

	app.Get("/health", HealthCheck(deps.DB, deps.LLMEnabled))
	app.Get("/healthz", LivenessProbe())
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}
	app.Get("/swagger/*", Swagger())

	v1 := app.Group("/v1/compliance")
	v1.Post("/check", CheckCompliance(deps.Compliance))
	v1.Post("/classify", ClassifyText(deps.Compliance))
	v1.Get("/guidelines", ListGuidelines(deps.Compliance))
	v1.Get("/checks", ListChecks(deps.Compliance))
	v1.Get("/checks/:id", GetCheck(deps.Compliance))
	v1.Get("/checks/:id/source", GetCheckSource(deps.Compliance))
	v1.Delete("/checks/:id", DeleteCheck(deps.Compliance))
}

// Swagger serves the UI with host and scheme taken from the incoming request.
func Swagger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	}
}
