package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"smartjob-backend/controllers"
	applicanthandler "smartjob-backend/lib/applicant"
	"smartjob-backend/lib/utils/helpers"
	"smartjob-backend/middleware"
	apimodels "smartjob-backend/models/api"
	applicantapimodels "smartjob-backend/models/api/applicant"
)

type applicantApiController struct {
	controllers.BaseAPIController
}

func InitApplicantApiRouters(app fiber.Router) {
	controller := applicantApiController{}
	app.Route("applicants", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Post("export", controller.export)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
			idRoute.Put("status", controller.updateStatus)
			idRoute.Get("resume", controller.resume)
		})
	})
}

// @Summary Applicant list
// @Tags Applicants
// @Description Accepted applicants are status=Reviewed, rejected are status=Rejected
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status				query		string	false	"Pending/Reviewed/Rejected"
// @Param   job_id				query		string	false	"job ID"
// @Param   search				query		string	false	"name, email or contact"
// @Param   page				query		int		false	"page"
// @Param   limit				query		int		false	"rows per page"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/applicants [get]
func (c *applicantApiController) list(ctx *fiber.Ctx) error {
	var filter applicantapimodels.ApplicantFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	if err := filter.Validate(); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	list, rowCount, err := applicanthandler.Instance.List(middleware.GetRecruiterScope(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load applicants")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Add applicant
// @Tags Applicants
// @Description Multipart form, the resume file is optional
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   name				formData	string	true	"name"
// @Param   email				formData	string	true	"email"
// @Param   contact				formData	string	false	"phone"
// @Param   job_id				formData	string	false	"job ID"
// @Param   job_title			formData	string	false	"job title when job_id is empty"
// @Param   resume				formData	file	false	"resume"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/applicants [post]
func (c *applicantApiController) create(ctx *fiber.Ctx) error {
	var payload applicantapimodels.ApplicantData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	resume, err := helpers.ReadFormFile(ctx, "resume")
	if err != nil {
		return c.SendBadRequest(ctx, "Unable to read the uploaded resume")
	}
	resp, hMsg, err := applicanthandler.Instance.Create(ctx.UserContext(), middleware.GetRecruiterScope(ctx), middleware.GetUserID(ctx), payload, resume)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to add applicant")
	}
	if hMsg != "" {
		return c.SendBadRequest(ctx, hMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get applicant
// @Tags Applicants
// @Description Get applicant by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"applicant ID"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/applicants/{id} [get]
func (c *applicantApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	resp, err := applicanthandler.Instance.GetByID(middleware.GetRecruiterScope(ctx), id)
	if err != nil {
		if errors.Is(err, applicanthandler.ErrApplicantNotFound) {
			return c.SendNotFound(ctx, err)
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load applicant")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Change applicant status
// @Tags Applicants
// @Description Pending, Reviewed (accepted) or Rejected
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"applicant ID"
// @Param	body body	 applicantapimodels.StatusUpdate	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/applicants/{id}/status [put]
func (c *applicantApiController) updateStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	var payload applicantapimodels.StatusUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	if err = payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	resp, err := applicanthandler.Instance.UpdateStatus(middleware.GetRecruiterScope(ctx), id, payload.Status)
	if err != nil {
		if errors.Is(err, applicanthandler.ErrApplicantNotFound) {
			return c.SendNotFound(ctx, err)
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to update applicant status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete applicant
// @Tags Applicants
// @Description Deletes the applicant and the stored resume
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"applicant ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/applicants/{id} [delete]
func (c *applicantApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	err = applicanthandler.Instance.Delete(ctx.UserContext(), middleware.GetRecruiterScope(ctx), id)
	if err != nil {
		if errors.Is(err, applicanthandler.ErrApplicantNotFound) {
			return c.SendNotFound(ctx, err)
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to delete applicant")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Download resume
// @Tags Applicants
// @Description Returns the uploaded resume file
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"applicant ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/applicants/{id}/resume [get]
func (c *applicantApiController) resume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	body, file, err := applicanthandler.Instance.GetResume(ctx.UserContext(), middleware.GetRecruiterScope(ctx), id)
	if err != nil {
		if errors.Is(err, applicanthandler.ErrApplicantNotFound) || errors.Is(err, applicanthandler.ErrResumeNotFound) {
			return c.SendNotFound(ctx, err)
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to download resume")
	}
	ctx.Set(fiber.HeaderContentType, file.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Name))
	return ctx.Send(body)
}

// @Summary Export applicants
// @Tags Applicants
// @Description XLSX of the applicants matching the filter
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicantapimodels.ApplicantFilter	true	"request body"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/applicants/export [post]
func (c *applicantApiController) export(ctx *fiber.Ctx) error {
	var filter applicantapimodels.ApplicantFilter
	if len(ctx.Body()) != 0 {
		if err := c.BodyParser(ctx, &filter); err != nil {
			return c.SendBadRequest(ctx, err.Error())
		}
	}
	if err := filter.Validate(); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	body, err := applicanthandler.Instance.Export(middleware.GetRecruiterScope(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to export applicants")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="applicants.xlsx"`)
	return ctx.Send(body.Bytes())
}
