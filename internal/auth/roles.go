package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/teacher-account-service/internal/domain"
	apperrors "github.com/spec-kit/teacher-account-service/pkg/util"
)

// RequireTeacher ensures the authenticated caller holds the teacher role.
func RequireTeacher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok || claims.Role != domain.RoleTeacher {
			return apperrors.NewForbidden("role", "auth.error.role.teacherRequired")
		}
		return c.Next()
	}
}
