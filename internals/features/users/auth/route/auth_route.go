// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"feeportal_backend/internals/datastore"
	"feeportal_backend/internals/features/users/auth/controller"
	"feeportal_backend/internals/middlewares"
)

// AuthRoutes mounts the public login endpoint.
func AuthRoutes(router fiber.Router, store *datastore.Store) {
	h := controller.NewAuthController(store)

	auth := router.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), h.Login)
}

// UserAuthRoutes mounts the authenticated credential endpoints.
func UserAuthRoutes(router fiber.Router, store *datastore.Store) {
	h := controller.NewAuthController(store)

	router.Post("/user/change-password", h.ChangePassword)
}
