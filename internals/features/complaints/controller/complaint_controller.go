// file: internals/features/complaints/controller/complaint_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"feeportal_backend/internals/datastore"
	"feeportal_backend/internals/features/complaints/dto"
	svc "feeportal_backend/internals/features/complaints/service"
	helper "feeportal_backend/internals/helpers"
)

/* =======================================================================
   Controller
======================================================================= */

type ComplaintController struct {
	Validator *validator.Validate
	Engine    *svc.Engine
}

func NewComplaintController(store *datastore.Store) *ComplaintController {
	return &ComplaintController{
		Validator: validator.New(),
		Engine:    svc.NewEngine(store),
	}
}

// GET /complaints
func (h *ComplaintController) List(c *fiber.Ctx) error {
	return c.JSON(h.Engine.List())
}

// GET /complaints/:id
func (h *ComplaintController) Get(c *fiber.Ctx) error {
	complaint, err := h.Engine.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, svc.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "complaint not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(complaint)
}

// POST /complaints
func (h *ComplaintController) Create(c *fiber.Ctx) error {
	var req dto.CreateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(h.Engine.Create(req.ToInput()))
}

// POST /complaints/:id/comment
func (h *ComplaintController) AddComment(c *fiber.Ctx) error {
	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	complaint, err := h.Engine.AddComment(c.Params("id"), req.Actor, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, svc.ErrNotFound):
			return fiber.NewError(fiber.StatusNotFound, "complaint not found")
		case errors.Is(err, svc.ErrBlankNote):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(complaint)
}

// POST /complaints/:id/escalate
func (h *ComplaintController) Escalate(c *fiber.Ctx) error {
	complaint, err := h.Engine.Escalate(c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, svc.ErrNotFound):
			return fiber.NewError(fiber.StatusNotFound, "complaint not found")
		case errors.Is(err, svc.ErrInvalidTransition):
			return fiber.NewError(fiber.StatusBadRequest, "cannot escalate past terminal stage")
		default:
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(complaint)
}
