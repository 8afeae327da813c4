// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"feeportal_backend/internals/datastore"
	"feeportal_backend/internals/features/users/auth/dto"
	svc "feeportal_backend/internals/features/users/auth/service"
	helper "feeportal_backend/internals/helpers"
)

/* =======================================================================
   Controller
======================================================================= */

type AuthController struct {
	Validator *validator.Validate
	Service   *svc.AuthService
}

func NewAuthController(store *datastore.Store) *AuthController {
	return &AuthController{
		Validator: validator.New(),
		Service:   svc.NewAuthService(store),
	}
}

// POST /auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	token, user, err := h.Service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, svc.ErrInvalidCredentials) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid username or password")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(dto.NewLoginResponse(token, user))
}

// POST /user/change-password
func (h *AuthController) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID := helper.GetUserID(c)
	if userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing user identity")
	}

	if err := h.Service.ChangePassword(userID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, svc.ErrInvalidCredentials) {
			return fiber.NewError(fiber.StatusUnauthorized, "wrong password")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"success": true})
}
