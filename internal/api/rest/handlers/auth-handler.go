package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sekolahdev/admission_service/internal/api/rest/middleware"
	"github.com/sekolahdev/admission_service/internal/dto"
	"github.com/sekolahdev/admission_service/internal/helper"
	"github.com/sekolahdev/admission_service/internal/helper/utils"
	"github.com/sekolahdev/admission_service/internal/services"
)

type AdmissionHandler struct {
	svc  services.AdmissionService
	auth helper.Auth
}

func NewAdmissionHandler(svc services.AdmissionService, auth helper.Auth) *AdmissionHandler {
	return &AdmissionHandler{svc: svc, auth: auth}
}

func (h *AdmissionHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Auth
	auth := api.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)

	// Applicant (own application)
	application := api.Group("/application", middleware.AuthMiddleware(h.auth))
	application.Get("/me", h.GetMyApplication)
	application.Put("/me/draft", h.SaveDraft)
	application.Post("/me/submit", h.Submit)
	application.Get("/form", h.GetFormConfig)

	// Staff
	admin := api.Group("/admin", middleware.AuthMiddleware(h.auth), middleware.AdminOnly(h.svc))
	admin.Get("/applications", h.ListApplications)
	admin.Get("/applications/summary", h.Summary)
	admin.Get("/applications/:appID", h.GetApplication)
	admin.Post("/applications/:appID/decision", h.Decide)
	admin.Delete("/applications/:appID", h.DeleteApplication)

	admin.Get("/config", h.GetAdminConfig)
	admin.Patch("/config", h.UpdateConfig)
	admin.Post("/config/fields", h.AddFormField)
	admin.Delete("/config/fields/:fieldID", h.RemoveFormField)
}

func (h *AdmissionHandler) Register(ctx *fiber.Ctx) error {
	var requestBody dto.RegisterRequest

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	user, err := h.svc.Register(requestBody)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}

	token, err := h.auth.GenerateToken(int(user.ID), user.Username, user.Role)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "could not generate token")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			FullName: user.FullName,
			Role:     user.Role,
		},
	})
}

func (h *AdmissionHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.UserLogin
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "username and password are required")
	}

	user, err := h.svc.Login(requestBody)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Invalid username or password")
	}

	token, err := h.auth.GenerateToken(int(user.ID), user.Username, user.Role)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "could not generate token")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			FullName: user.FullName,
			Role:     user.Role,
		},
	})
}
