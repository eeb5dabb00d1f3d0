package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"smartjob-backend/controllers"
	jobhandler "smartjob-backend/lib/job"
	"smartjob-backend/middleware"
	apimodels "smartjob-backend/models/api"
	jobapimodels "smartjob-backend/models/api/job"
)

type jobApiController struct {
	controllers.BaseAPIController
}

func InitJobApiRouters(app fiber.Router) {
	controller := jobApiController{}
	app.Route("jobs", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Get("all", controller.list)
		router.Post("", controller.create)
		router.Post("create", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Get("pdf", controller.pdf)
		})
	})
}

// @Summary Job list
// @Tags Jobs
// @Description Recruiters get their own jobs, admins get every job
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search				query		string	false	"title or location"
// @Param   job_type			query		string	false	"job type"
// @Param   experience_level	query		string	false	"experience level"
// @Param   page				query		int		false	"page"
// @Param   limit				query		int		false	"rows per page"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/jobs [get]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	var filter jobapimodels.JobFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	list, rowCount, err := jobhandler.Instance.List(middleware.GetRecruiterScope(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load jobs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Create job
// @Tags Jobs
// @Description Posts a new job for the current recruiter
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 jobapimodels.JobData	true	"request body"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/jobs [post]
func (c *jobApiController) create(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	resp, err := jobhandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to create job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get job
// @Tags Jobs
// @Description Get job by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"job ID"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/jobs/{id} [get]
func (c *jobApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	resp, err := jobhandler.Instance.GetByID(middleware.GetRecruiterScope(ctx), id)
	if err != nil {
		if errors.Is(err, jobhandler.ErrJobNotFound) {
			return c.SendNotFound(ctx, err)
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load jobs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update job
// @Tags Jobs
// @Description Changes only the fields present in the body
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"job ID"
// @Param	body body	 jobapimodels.JobPatch	true	"request body"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/jobs/{id} [put]
func (c *jobApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	var payload jobapimodels.JobPatch
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	if err = payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	resp, hMsg, err := jobhandler.Instance.Update(middleware.GetRecruiterScope(ctx), id, payload)
	if err != nil {
		if errors.Is(err, jobhandler.ErrJobNotFound) {
			return c.SendNotFound(ctx, err)
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to update job")
	}
	if hMsg != "" {
		return c.SendBadRequest(ctx, hMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete job
// @Tags Jobs
// @Description Deletes the job, its applicants keep the job title
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"job ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/jobs/{id} [delete]
func (c *jobApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	err = jobhandler.Instance.Delete(middleware.GetRecruiterScope(ctx), id)
	if err != nil {
		if errors.Is(err, jobhandler.ErrJobNotFound) {
			return c.SendNotFound(ctx, err)
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to delete job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Job posting PDF
// @Tags Jobs
// @Description Printable job posting
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"job ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/jobs/{id}/pdf [get]
func (c *jobApiController) pdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	body, fileName, err := jobhandler.Instance.GetPdf(middleware.GetRecruiterScope(ctx), id)
	if err != nil {
		if errors.Is(err, jobhandler.ErrJobNotFound) {
			return c.SendNotFound(ctx, err)
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to generate job PDF")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return ctx.Send(body)
}
