package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"smartjob-backend/controllers"
	profilehandler "smartjob-backend/lib/profile"
	"smartjob-backend/lib/utils/helpers"
	"smartjob-backend/middleware"
	apimodels "smartjob-backend/models/api"
	profileapimodels "smartjob-backend/models/api/profile"
)

type profileApiController struct {
	controllers.BaseAPIController
}

func InitProfileApiRouters(app fiber.Router) {
	controller := profileApiController{}
	app.Route("profiles", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Get("photo", controller.photo)
		})
	})
}

// @Summary Create profile
// @Tags Profiles
// @Description Fills the profile of the current user
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   full_name			formData	string	true	"full name"
// @Param   company_name		formData	string	false	"company"
// @Param   phone_number		formData	string	false	"phone"
// @Param   location			formData	string	false	"location"
// @Param   photo				formData	file	false	"profile photo"
// @Success 200 {object} apimodels.Response{data=profileapimodels.ProfileView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/profiles [post]
func (c *profileApiController) create(ctx *fiber.Ctx) error {
	var payload profileapimodels.ProfileData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	photo, err := helpers.ReadFormFile(ctx, "photo")
	if err != nil {
		return c.SendBadRequest(ctx, "Unable to read the uploaded photo")
	}
	resp, err := profilehandler.Instance.Create(ctx.UserContext(), middleware.GetUserID(ctx), payload, photo)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error creating profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get profile
// @Tags Profiles
// @Description Get profile by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"profile ID"
// @Success 200 {object} apimodels.Response{data=profileapimodels.ProfileView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/profiles/{id} [get]
func (c *profileApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	resp, err := profilehandler.Instance.GetByID(id)
	if err != nil {
		if errors.Is(err, profilehandler.ErrProfileNotFound) {
			return c.SendNotFound(ctx, err)
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error fetching profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update profile
// @Tags Profiles
// @Description Only the owner can update the profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"profile ID"
// @Param   full_name			formData	string	false	"full name"
// @Param   company_name		formData	string	false	"company"
// @Param   phone_number		formData	string	false	"phone"
// @Param   location			formData	string	false	"location"
// @Param   photo				formData	file	false	"profile photo"
// @Success 200 {object} apimodels.Response{data=profileapimodels.ProfileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/profiles/{id} [put]
func (c *profileApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	var payload profileapimodels.ProfilePatch
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	if err = payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	photo, err := helpers.ReadFormFile(ctx, "photo")
	if err != nil {
		return c.SendBadRequest(ctx, "Unable to read the uploaded photo")
	}
	resp, err := profilehandler.Instance.Update(ctx.UserContext(), middleware.GetUserID(ctx), id, payload, photo)
	if err != nil {
		switch {
		case errors.Is(err, profilehandler.ErrProfileNotFound):
			return c.SendNotFound(ctx, err)
		case errors.Is(err, profilehandler.ErrForbidden):
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error updating profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Profile photo
// @Tags Profiles
// @Description Returns the uploaded profile photo
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"profile ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/profiles/{id}/photo [get]
func (c *profileApiController) photo(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	body, file, err := profilehandler.Instance.GetPhoto(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, profilehandler.ErrProfileNotFound) || errors.Is(err, profilehandler.ErrPhotoNotFound) {
			return c.SendNotFound(ctx, err)
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error fetching profile")
	}
	ctx.Set(fiber.HeaderContentType, file.ContentType)
	return ctx.Send(body)
}
