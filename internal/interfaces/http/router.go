package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catering-api/internal/application/auth"
	"github.com/jhoicas/catering-api/internal/application/consumption"
	"github.com/jhoicas/catering-api/internal/application/movements"
	"github.com/jhoicas/catering-api/internal/application/reports"
	"github.com/jhoicas/catering-api/internal/application/usecase"
	"github.com/jhoicas/catering-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProjectUC   *usecase.ProjectUseCase
	ProductUC   *usecase.ProductUseCase
	RecipeUC    *usecase.RecipeUseCase
	MenuUC      *usecase.MenuUseCase
	CalculateUC *consumption.CalculateConsumptionUseCase
	CommitUC    *consumption.CommitConsumptionUseCase
	ReverseUC   *consumption.ReverseBulkMovementUseCase
	ListMovsUC  *movements.ListMovementsUseCase
	ReportUC    *reports.ConsumptionReportUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Projects (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	projects := api.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Get("/", projectHandler.List)
	projects.Post("/", projectHandler.Create)
	projects.Get("/:id", projectHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Recipes (protegido)
	recipes := protected.Group("/recipes")
	recipeHandler := NewRecipeHandler(deps.RecipeUC)
	recipes.Post("/", recipeHandler.Create)
	recipes.Get("/", recipeHandler.List)
	recipes.Get("/:id", recipeHandler.GetByID)

	// Menus (protegido)
	menus := protected.Group("/menus")
	menuHandler := NewMenuHandler(deps.MenuUC)
	menus.Post("/", menuHandler.Create)
	menus.Get("/", menuHandler.List)
	menus.Get("/:id", menuHandler.GetByID)

	// Consumption (protegido). Confirmar y revertir quedan restringidos a
	// admin y almacenista: el chef calcula pero no toca el stock.
	consumptionGroup := protected.Group("/consumption")
	consumptionHandler := NewConsumptionHandler(deps.CalculateUC, deps.CommitUC, deps.ReverseUC)
	consumptionGroup.Post("/calculate", consumptionHandler.Calculate)
	consumptionGroup.Post("/commit", RequireRole(entity.RoleAdmin, entity.RoleAlmacenista), consumptionHandler.Commit)
	consumptionGroup.Post("/:bulk_id/reverse", RequireRole(entity.RoleAdmin, entity.RoleAlmacenista), consumptionHandler.Reverse)

	// Movements (protegido, solo lectura + PDF)
	movementsGroup := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.ListMovsUC, deps.ReportUC)
	movementsGroup.Get("/", movementHandler.List)
	movementsGroup.Get("/:bulk_id/report", movementHandler.DownloadReport)
}
