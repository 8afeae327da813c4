// file: internals/features/finance/fees/controller/fee_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"feeportal_backend/internals/datastore"
	svc "feeportal_backend/internals/features/finance/fees/service"
)

type FeeController struct {
	Ledger *svc.Ledger
}

func NewFeeController(store *datastore.Store) *FeeController {
	return &FeeController{Ledger: svc.NewLedger(store)}
}

// GET /user/fees
func (h *FeeController) ListFees(c *fiber.Ctx) error {
	return c.JSON(h.Ledger.Snapshot())
}
