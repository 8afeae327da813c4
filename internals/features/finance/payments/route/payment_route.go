// file: internals/features/finance/payments/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"feeportal_backend/internals/configs"
	"feeportal_backend/internals/datastore"
	"feeportal_backend/internals/features/finance/payments/controller"
	svc "feeportal_backend/internals/features/finance/payments/service"
)

func PaymentRoutes(router fiber.Router, store *datastore.Store) {
	h := controller.NewPaymentController(store, svc.RandomFailure(configs.GatewayFailureRate))

	payments := router.Group("/payments")
	payments.Post("/pay", h.Pay)
	payments.Get("/:feeId/receipt", h.Receipt)
}
