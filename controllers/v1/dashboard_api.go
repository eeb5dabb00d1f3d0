package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"smartjob-backend/controllers"
	dashboardhandler "smartjob-backend/lib/dashboard"
	"smartjob-backend/middleware"
	apimodels "smartjob-backend/models/api"
)

type dashboardApiController struct {
	controllers.BaseAPIController
}

func InitDashboardApiRouters(app fiber.Router) {
	controller := dashboardApiController{}
	app.Route("dashboard", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("stats", controller.stats)
	})
}

// @Summary Dashboard counters
// @Tags Dashboard
// @Description Active jobs, applications and applicants per status
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.Stats}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/dashboard/stats [get]
func (c *dashboardApiController) stats(ctx *fiber.Ctx) error {
	resp, err := dashboardhandler.Instance.GetStats(middleware.GetRecruiterScope(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load dashboard")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
