package apiv1

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"smartjob-backend/controllers"
	"smartjob-backend/db"
	apimodels "smartjob-backend/models/api"
)

const healthCheckTimeout = 2 * time.Second

type HealthView struct {
	Database string `json:"database"`
}

type healthApiController struct {
	controllers.BaseAPIController
	ping func(ctx context.Context) error
}

func InitHealthApiRouters(app fiber.Router) {
	initHealthRouters(app, db.PingDB)
}

func initHealthRouters(app fiber.Router, ping func(ctx context.Context) error) {
	controller := healthApiController{ping: ping}
	app.Get("health", controller.health)
}

// @Summary Service health
// @Tags Health
// @Description Database availability, used by load balancer probes
// @Success 200 {object} apimodels.Response{data=apiv1.HealthView}
// @Failure 503 {object} apimodels.Response{data=apiv1.HealthView}
// @router /api/health [get]
func (c *healthApiController) health(ctx *fiber.Ctx) error {
	pingCtx, cancel := context.WithTimeout(ctx.UserContext(), healthCheckTimeout)
	defer cancel()
	if err := c.ping(pingCtx); err != nil {
		c.GetLogger(ctx).WithError(err).Error("database health check failed")
		resp := apimodels.NewError("Database unavailable")
		resp.Data = HealthView{Database: "down"}
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(HealthView{Database: "up"}))
}
