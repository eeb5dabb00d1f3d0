package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "smartjob-backend/lib/utils/auth-utils"
	"smartjob-backend/models"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, ok := claims["role"].(string); ok {
		return models.UserRole(role)
	}
	return ""
}

// GetRecruiterScope returns the recruiter id that limits data access,
// admins get an empty scope and see every recruiter's records.
func GetRecruiterScope(ctx *fiber.Ctx) string {
	if GetUserRole(ctx).IsAdmin() {
		return ""
	}
	return GetUserID(ctx)
}
