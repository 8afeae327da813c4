// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"feeportal_backend/internals/datastore"
	"feeportal_backend/internals/features/finance/payments/dto"
	svc "feeportal_backend/internals/features/finance/payments/service"
	helper "feeportal_backend/internals/helpers"
)

/* =======================================================================
   Controller
======================================================================= */

type PaymentController struct {
	Validator *validator.Validate
	Applier   *svc.Applier
}

func NewPaymentController(store *datastore.Store, fail svc.FailurePolicy) *PaymentController {
	return &PaymentController{
		Validator: validator.New(),
		Applier:   svc.NewApplier(store, fail),
	}
}

// POST /payments/pay
func (h *PaymentController) Pay(c *fiber.Ctx) error {
	var req dto.PayRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	result, err := h.Applier.Apply(req.ToRequest())
	if err != nil {
		if errors.Is(err, svc.ErrGateway) {
			return fiber.NewError(fiber.StatusBadGateway, "payment gateway error")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(result)
}

// GET /payments/:feeId/receipt
func (h *PaymentController) Receipt(c *fiber.Ctx) error {
	pdf, err := h.Applier.Receipt(c.Params("feeId"))
	if err != nil {
		if errors.Is(err, svc.ErrReceiptNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "receipt not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="receipt.pdf"`)
	return c.Send(pdf)
}
