package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sekolahdev/admission_service/internal/dto"
	"github.com/sekolahdev/admission_service/internal/helper/utils"
)

func (h *AdmissionHandler) ListApplications(ctx *fiber.Ctx) error {
	rows, err := h.svc.ListApplications()
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, rows)
}

func (h *AdmissionHandler) Summary(ctx *fiber.Ctx) error {
	resp, err := h.svc.Summary()
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *AdmissionHandler) GetApplication(ctx *fiber.Ctx) error {
	appID, err := parseAppID(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid application id")
	}

	resp, err := h.svc.GetApplication(appID)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *AdmissionHandler) Decide(ctx *fiber.Ctx) error {
	appID, err := parseAppID(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid application id")
	}

	adminID, ok := ctx.Locals("userID").(uint)
	if !ok || adminID == 0 {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var requestBody dto.DecisionRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.svc.DecideApplication(appID, adminID, requestBody.Decision, requestBody.Note); err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Application status updated")
}

func (h *AdmissionHandler) DeleteApplication(ctx *fiber.Ctx) error {
	appID, err := parseAppID(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid application id")
	}

	if err := h.svc.DeleteApplication(appID); err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Application deleted")
}

func (h *AdmissionHandler) GetAdminConfig(ctx *fiber.Ctx) error {
	resp, err := h.svc.GetFormConfig()
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *AdmissionHandler) UpdateConfig(ctx *fiber.Ctx) error {
	var requestBody dto.ConfigUpdateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	resp, err := h.svc.UpdateConfig(requestBody)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *AdmissionHandler) AddFormField(ctx *fiber.Ctx) error {
	var requestBody dto.FieldInput
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	field, err := h.svc.AddFormField(requestBody)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, field)
}

func (h *AdmissionHandler) RemoveFormField(ctx *fiber.Ctx) error {
	fieldID := ctx.Params("fieldID")
	if fieldID == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "field id is required")
	}

	if err := h.svc.RemoveFormField(fieldID); err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Field removed")
}

func parseAppID(ctx *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params("appID"), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(id), nil
}
