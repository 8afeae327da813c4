// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"feeportal_backend/internals/datastore"
	complaintRoute "feeportal_backend/internals/features/complaints/route"
	feeRoute "feeportal_backend/internals/features/finance/fees/route"
	paymentRoute "feeportal_backend/internals/features/finance/payments/route"
	transactionRoute "feeportal_backend/internals/features/finance/transactions/route"
	authRoute "feeportal_backend/internals/features/users/auth/route"
	profileRoute "feeportal_backend/internals/features/users/profile/route"
	authMiddleware "feeportal_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, store *datastore.Store) {
	BaseRoutes(app)

	api := app.Group("/api")

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, store)

	// ===================== PRIVATE (JWT) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := api.Group("", authMiddleware.AuthMiddleware())

	log.Println("[INFO] Mounting Fee routes...")
	feeRoute.FeeRoutes(private, store)

	log.Println("[INFO] Mounting Payment routes...")
	paymentRoute.PaymentRoutes(private, store)

	log.Println("[INFO] Mounting Transaction routes...")
	transactionRoute.TransactionRoutes(private, store)

	log.Println("[INFO] Mounting Complaint routes...")
	complaintRoute.ComplaintRoutes(private, store)

	log.Println("[INFO] Mounting Profile routes...")
	profileRoute.ProfileRoutes(private, store)
	authRoute.UserAuthRoutes(private, store)
}
