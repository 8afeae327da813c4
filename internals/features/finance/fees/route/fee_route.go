// file: internals/features/finance/fees/route/fee_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"feeportal_backend/internals/datastore"
	"feeportal_backend/internals/features/finance/fees/controller"
)

func FeeRoutes(router fiber.Router, store *datastore.Store) {
	h := controller.NewFeeController(store)

	router.Get("/user/fees", h.ListFees)
}
