package middleware

import (
	"github.com/gofiber/fiber/v2"
	apimodels "smartjob-backend/models/api"
)

func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).IsAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("Operation is not allowed"))
		}
		return ctx.Next()
	}
}
