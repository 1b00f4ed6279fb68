package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sekolahku/inventaris-api/internal/application/auth"
	"github.com/sekolahku/inventaris-api/internal/application/requests"
	"github.com/sekolahku/inventaris-api/internal/application/usecase"
	"github.com/sekolahku/inventaris-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	ItemUC    *usecase.ItemUseCase
	UserUC    *usecase.UserUseCase
	ReportUC  *usecase.ReportUseCase
	RequestUC *requests.UseCase
	JWTSecret string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Everything below requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items: reads for everyone, writes for Admin.
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Post("/", RequireRole(entity.RoleAdmin), itemHandler.Create)
	items.Put("/:id", RequireRole(entity.RoleAdmin), itemHandler.Update)
	items.Delete("/:id", RequireRole(entity.RoleAdmin), itemHandler.Delete)

	// Requests: submission is open to every authenticated user; transition
	// authority is enforced per edge inside the workflow engine, so no
	// route-level role gate here.
	reqGroup := protected.Group("/requests")
	requestHandler := NewRequestHandler(deps.RequestUC)
	reqGroup.Post("/consumable", requestHandler.CreateConsumable)
	reqGroup.Post("/borrow", requestHandler.CreateBorrow)
	reqGroup.Post("/return", requestHandler.CreateReturn)
	reqGroup.Get("/:kind", requestHandler.List)
	reqGroup.Get("/:kind/:id", requestHandler.GetByID)
	reqGroup.Get("/:kind/:id/transitions", requestHandler.Transitions)
	reqGroup.Post("/:kind/:id/transition", requestHandler.Transition)
	reqGroup.Get("/:kind/:id/history", requestHandler.History)

	// Users (Admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Put("/:id/role", userHandler.UpdateRole)

	// Reports (Admin and Kepala Sekolah)
	reports := protected.Group("/reports", RequireRole(entity.RoleAdmin, entity.RoleHeadmaster))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/inventory", reportHandler.InventorySummary)
}
