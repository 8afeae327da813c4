// file: internals/features/complaints/route/complaint_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"feeportal_backend/internals/datastore"
	"feeportal_backend/internals/features/complaints/controller"
)

func ComplaintRoutes(router fiber.Router, store *datastore.Store) {
	h := controller.NewComplaintController(store)

	complaints := router.Group("/complaints")
	complaints.Get("/", h.List)
	complaints.Post("/", h.Create)
	complaints.Get("/:id", h.Get)
	complaints.Post("/:id/comment", h.AddComment)
	complaints.Post("/:id/escalate", h.Escalate)
}
