package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"complyapi/internal/model"
)

const healthPingTimeout = 2 * time.Second

type healthResponse struct {
	Status   string `json:"status" example:"ok"`
	LLM      bool   `json:"llm" example:"true"`
	Database string `json:"database" example:"up" enums:"up,disabled"`
}

// CheckText acknowledges any submission without reading it.
//
// @Summary      Acknowledge a submission
// @Description  Accepts any body and always answers {"success":true}.
// @Tags         compliance
// @Accept       */*
// @Produce      json
// @Success      200  {object}  model.Acknowledgement
// @Router       /check-text [post]
func CheckText() fiber.Handler {
	return acknowledge
}

// CheckTextPath is the acknowledgement route.
const CheckTextPath = "/check-text"

func acknowledge(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(model.Acknowledgement{Success: true})
}

// HealthCheck reports readiness. A nil db means history is not configured and
// is reported as disabled rather than down.
//
// @Summary  Readiness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  healthResponse
// @Failure  503  {object}  errorPayload
// @Router   /health [get]
func HealthCheck(db *sql.DB, llmEnabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := healthResponse{Status: "ok", LLM: llmEnabled, Database: "disabled"}
		if db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), healthPingTimeout)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
			}
			res.Database = "up"
		}
		return c.Status(fiber.StatusOK).JSON(res)
	}
}

// LivenessProbe always answers 200 while the process is serving.
//
// @Summary  Liveness probe
// @Tags     health
// @Success  200
// @Router   /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
