package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/teacher-account-service/internal/api/dto"
	"github.com/spec-kit/teacher-account-service/internal/auth"
	"github.com/spec-kit/teacher-account-service/internal/domain"
	"github.com/spec-kit/teacher-account-service/internal/service"
	apperrors "github.com/spec-kit/teacher-account-service/pkg/util"
)

// TeachersHandler exposes the account endpoints.
type TeachersHandler struct {
	accounts *service.AccountService
}

// NewTeachersHandler constructs handler.
func NewTeachersHandler(accounts *service.AccountService) *TeachersHandler {
	return &TeachersHandler{accounts: accounts}
}

// Register handles POST /teachers.
func (h *TeachersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("body", "request.error.body")
	}

	if blank(req.Name) {
		return apperrors.NewValidation("name", "signup.error.name")
	}
	if blank(req.LastName) {
		return apperrors.NewValidation("lastName", "signup.error.lastName")
	}
	if blank(req.Email) {
		return apperrors.NewValidation("email", "signup.error.email")
	}
	if blank(req.Password) {
		return apperrors.NewValidation("password", "signup.error.password.empty")
	}
	if !validEmail(req.Email) {
		return apperrors.NewValidation("email", "signup.error.email.format")
	}

	teacher, err := h.accounts.Register(c.Context(), service.RegisterInput{
		Name:            req.Name,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		TeachingStage:   req.TeachingStage,
		SchoolType:      req.SchoolType,
		SchoolLocation:  req.SchoolLocation,
		Gender:          req.Gender,
		ExperienceYears: req.ExperienceYears,
		Community:       req.Community,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"inserted": fiber.Map{
			"id":        teacher.ID,
			"createdAt": teacher.CreatedAt,
		},
	})
}

// Login handles POST /teachers/login.
func (h *TeachersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("body", "request.error.body")
	}

	if blank(req.Email) {
		return apperrors.NewValidation("email", "login.error.email.empty")
	}
	if blank(req.Password) {
		return apperrors.NewValidation("password", "login.error.password.empty")
	}

	result, err := h.accounts.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
		Name:         result.Name,
	})
}

// Profile handles GET /teachers/profile.
func (h *TeachersHandler) Profile(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("token", "auth.error.token.missing")
	}

	profile, err := h.accounts.Profile(c.Context(), claims.ID)
	if err != nil {
		return err
	}

	return c.JSON(profileResponse(profile))
}

// UpdateProfile handles PUT /teachers/profile.
func (h *TeachersHandler) UpdateProfile(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("token", "auth.error.token.missing")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("body", "request.error.body")
	}

	if req.Name == nil || blank(*req.Name) {
		return apperrors.NewValidation("name", "profile.error.name")
	}
	if req.LastName == nil || blank(*req.LastName) {
		return apperrors.NewValidation("lastName", "profile.error.lastName")
	}
	if req.Email == nil || blank(*req.Email) {
		return apperrors.NewValidation("email", "profile.error.email.mandatory")
	}
	if !validEmail(*req.Email) {
		return apperrors.NewValidation("email", "profile.error.email.format")
	}

	updated, err := h.accounts.UpdateProfile(c.Context(), claims.ID, domain.ProfileUpdate{
		Name:            req.Name,
		LastName:        req.LastName,
		Email:           req.Email,
		TeachingStage:   req.TeachingStage,
		SchoolType:      req.SchoolType,
		SchoolLocation:  req.SchoolLocation,
		Gender:          req.Gender,
		ExperienceYears: req.ExperienceYears,
		Community:       req.Community,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"updated": updated})
}

// CheckLogin handles GET /teachers/checkLogin. Reaching the handler means
// the token middleware accepted the caller as a teacher.
func (h *TeachersHandler) CheckLogin(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("token", "auth.error.token.missing")
	}
	return c.JSON(fiber.Map{"user": claims})
}

func profileResponse(profile *domain.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		Name:            profile.Name,
		LastName:        profile.LastName,
		Email:           profile.Email,
		TeachingStage:   profile.TeachingStage,
		SchoolType:      profile.SchoolType,
		SchoolLocation:  profile.SchoolLocation,
		Gender:          profile.Gender,
		ExperienceYears: profile.ExperienceYears,
		Community:       profile.Community,
	}
}
