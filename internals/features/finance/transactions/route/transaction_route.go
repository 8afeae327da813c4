// file: internals/features/finance/transactions/route/transaction_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"feeportal_backend/internals/datastore"
	"feeportal_backend/internals/features/finance/transactions/controller"
)

func TransactionRoutes(router fiber.Router, store *datastore.Store) {
	h := controller.NewTransactionController(store)

	transactions := router.Group("/transactions")
	transactions.Get("/", h.List)
	transactions.Post("/export", h.Export)
	transactions.Get("/:id", h.Get)
	transactions.Get("/:id/receipt", h.Receipt)
}
