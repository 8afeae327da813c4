// file: internals/features/users/profile/route/profile_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"feeportal_backend/internals/datastore"
	"feeportal_backend/internals/features/users/profile/controller"
)

func ProfileRoutes(router fiber.Router, store *datastore.Store) {
	h := controller.NewProfileController(store)

	router.Get("/user/me", h.Me)
	router.Put("/user/me", h.UpdateMe)
	router.Post("/user/bank/verify-phone", h.SendBankPhoneVerification)

	verify := router.Group("/verify")
	verify.Post("/send", h.SendVerification)
	verify.Post("/confirm", h.ConfirmVerification)
}
