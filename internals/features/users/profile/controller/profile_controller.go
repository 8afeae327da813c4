// file: internals/features/users/profile/controller/profile_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"feeportal_backend/internals/configs"
	"feeportal_backend/internals/datastore"
	"feeportal_backend/internals/features/users/profile/dto"
	"feeportal_backend/internals/features/users/profile/model"
	svc "feeportal_backend/internals/features/users/profile/service"
	helper "feeportal_backend/internals/helpers"
)

/* =======================================================================
   Controller
======================================================================= */

type ProfileController struct {
	Validator *validator.Validate
	Profiles  *svc.ProfileService
	Broker    *svc.Broker
}

func NewProfileController(store *datastore.Store) *ProfileController {
	broker := svc.NewBroker(store)
	if configs.OTPTTL > 0 {
		broker.TTL = configs.OTPTTL
	}
	return &ProfileController{
		Validator: validator.New(),
		Profiles:  svc.NewProfileService(store),
		Broker:    broker,
	}
}

// GET /user/me
func (h *ProfileController) Me(c *fiber.Ctx) error {
	return c.JSON(h.Profiles.Get())
}

// PUT /user/me
func (h *ProfileController) UpdateMe(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	return c.JSON(h.Profiles.Update(req.ToInput()))
}

// POST /verify/send
func (h *ProfileController) SendVerification(c *fiber.Ctx) error {
	var req dto.VerifySendRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := h.Broker.Initiate(req.Field, req.NewValue)
	if err != nil {
		if errors.Is(err, svc.ErrUnknownField) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown profile field: "+req.Field)
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// mockOtp is exposed for the demo frontend; a real deployment
	// delivers the code out of band.
	return c.JSON(fiber.Map{
		"success":        true,
		"otpSent":        true,
		"verificationId": result.VerificationID,
		"mockOtp":        result.OTP,
	})
}

// POST /verify/confirm
func (h *ProfileController) ConfirmVerification(c *fiber.Ctx) error {
	var req dto.VerifyConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	profile, err := h.Broker.Confirm(req.VerificationID, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, svc.ErrVerificationNotFound):
			return fiber.NewError(fiber.StatusNotFound, "invalid verification id")
		case errors.Is(err, svc.ErrInvalidCode):
			return fiber.NewError(fiber.StatusBadRequest, "invalid otp")
		case errors.Is(err, svc.ErrExpired):
			return fiber.NewError(fiber.StatusBadRequest, "otp expired")
		default:
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"verified":       true,
		"updatedProfile": profile,
	})
}

// POST /user/bank/verify-phone
// Issues a challenge whose only effect on confirm is marking the
// bank-linked phone as verified.
func (h *ProfileController) SendBankPhoneVerification(c *fiber.Ctx) error {
	result, err := h.Broker.Initiate(string(model.FieldBankPhoneVerified), "true")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"otpSent":        true,
		"verificationId": result.VerificationID,
		"mockOtp":        result.OTP,
	})
}
