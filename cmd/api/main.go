package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/catering-api/internal/application/auth"
	"github.com/jhoicas/catering-api/internal/application/consumption"
	"github.com/jhoicas/catering-api/internal/application/movements"
	"github.com/jhoicas/catering-api/internal/application/reports"
	"github.com/jhoicas/catering-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/catering-api/internal/infrastructure/pdf"
	"github.com/jhoicas/catering-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/catering-api/internal/interfaces/http"
	"github.com/jhoicas/catering-api/pkg/config"
	"github.com/jhoicas/catering-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	projectRepo := postgres.NewProjectRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	menuRepo := postgres.NewMenuRepository(pool)
	bulkRepo := postgres.NewBulkMovementRepository(pool)
	movRepo := postgres.NewStockMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := consumption.NewIngredientResolver(recipeRepo, productRepo)

	projectUC := usecase.NewProjectUseCase(projectRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	recipeUC := usecase.NewRecipeUseCase(recipeRepo, productRepo, resolver)
	menuUC := usecase.NewMenuUseCase(menuRepo, recipeRepo)

	calculateUC := consumption.NewCalculateConsumptionUseCase(menuRepo, resolver)
	commitUC := consumption.NewCommitConsumptionUseCase(txRunner)
	reverseUC := consumption.NewReverseBulkMovementUseCase(txRunner)
	listMovsUC := movements.NewListMovementsUseCase(movRepo)

	// PDF: orden de consumo imprimible para cocina/almacén
	reportGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reports.NewConsumptionReportUseCase(bulkRepo, movRepo, productRepo, reportGenerator)

	authUC := auth.NewAuthUseCase(userRepo, projectRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Catering API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProjectUC:   projectUC,
		ProductUC:   productUC,
		RecipeUC:    recipeUC,
		MenuUC:      menuUC,
		CalculateUC: calculateUC,
		CommitUC:    commitUC,
		ReverseUC:   reverseUC,
		ListMovsUC:  listMovsUC,
		ReportUC:    reportUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
