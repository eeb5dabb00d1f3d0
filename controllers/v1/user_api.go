package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"smartjob-backend/controllers"
	userhandler "smartjob-backend/lib/user"
	"smartjob-backend/lib/utils/helpers"
	"smartjob-backend/middleware"
	apimodels "smartjob-backend/models/api"
	authapimodels "smartjob-backend/models/api/auth"
	userapimodels "smartjob-backend/models/api/user"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app fiber.Router) {
	controller := userApiController{}
	app.Route("user", func(router fiber.Router) {
		router.Post("register", controller.register)
		router.Post("login", controller.login)
		router.Use(middleware.AuthorizationRequired())
		router.Get("me", controller.me)
		router.Put("recruiter/profile", controller.updateRecruiterProfile)
	})
}

// @Summary Registration
// @Tags User
// @Description Creates a recruiter account
// @Param	body				body		authapimodels.RegisterRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/user/register [post]
func (c *userApiController) register(ctx *fiber.Ctx) error {
	var payload authapimodels.RegisterRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	user, hMsg, err := userhandler.Instance.Register(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Something went wrong")
	}
	if hMsg != "" {
		return c.SendBadRequest(ctx, hMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(user))
}

// @Summary Login
// @Tags User
// @Description Checks the credentials and issues a token
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.LoginResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/user/login [post]
func (c *userApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	resp, err := userhandler.Instance.Login(payload)
	if err != nil {
		if errors.Is(err, userhandler.ErrInvalidCredentials) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Invalid email or password")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Current user
// @Tags User
// @Description Returns the signed in user
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/user/me [get]
func (c *userApiController) me(ctx *fiber.Ctx) error {
	resp, err := userhandler.Instance.Me(middleware.GetUserID(ctx))
	if err != nil {
		if errors.Is(err, userhandler.ErrUserNotFound) {
			return c.SendNotFound(ctx, err)
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error fetching user")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update recruiter profile
// @Tags User
// @Description Multipart form, every field is optional
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   name				formData	string	false	"full name"
// @Param   company_name		formData	string	false	"company"
// @Param   phone_number		formData	string	false	"phone"
// @Param   location			formData	string	false	"location"
// @Param   photo				formData	file	false	"profile photo"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/user/recruiter/profile [put]
func (c *userApiController) updateRecruiterProfile(ctx *fiber.Ctx) error {
	var payload userapimodels.RecruiterProfileUpdate
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
	resp, err := userhandler.Instance.UpdateRecruiterProfile(ctx.UserContext(), middleware.GetUserID(ctx), payload, photo)
	if err != nil {
		if errors.Is(err, userhandler.ErrUserNotFound) {
			return c.SendNotFound(ctx, err)
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to update profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
