package main

import (
	"errors"
	"strings"

	"serraria-backend/internal/admin"
	"serraria-backend/internal/audit"
	"serraria-backend/internal/auth"
	"serraria-backend/internal/config"
	"serraria-backend/internal/dashboard"
	"serraria-backend/internal/database"
	"serraria-backend/internal/inventory"
	"serraria-backend/internal/ledger"
	"serraria-backend/internal/logger"
	"serraria-backend/internal/models"
	"serraria-backend/internal/production"
	"serraria-backend/internal/reports"
	"serraria-backend/internal/sales"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	if cfg.RedisAddr != "" {
		dashboard.EnableCache(cfg.RedisAddr)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Origens separadas por vírgula na env
	origins := strings.Split(cfg.CORSOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(origins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Auth pública
	api.Post("/auth/register", auth.RegisterHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Rotas autenticadas
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Fornecedores
	protected.Get("/suppliers", admin.ListSuppliersHandler())
	protected.Post("/suppliers", admin.CreateSupplierHandler())
	protected.Put("/suppliers/:id", admin.UpdateSupplierHandler())
	protected.Delete("/suppliers/:id", admin.DeleteSupplierHandler())

	// Estoque de madeira
	protected.Get("/stock-entries", inventory.ListStockEntriesHandler())
	protected.Post("/stock-entries", inventory.CreateStockEntryHandler())
	protected.Put("/stock-entries/:id", inventory.UpdateStockEntryHandler())
	protected.Delete("/stock-entries/:id", inventory.DeleteStockEntryHandler())

	// Entregas de caminhão (grava também a entrada de estoque derivada)
	protected.Get("/deliveries", inventory.ListDeliveriesHandler())
	protected.Post("/deliveries", inventory.CreateDeliveryHandler())
	protected.Put("/deliveries/:id", inventory.UpdateDeliveryHandler())
	protected.Delete("/deliveries/:id", inventory.DeleteDeliveryHandler())

	// Produção de paletes
	protected.Get("/production-runs", production.ListProductionHandler())
	protected.Post("/production-runs", production.CreateProductionHandler())
	protected.Put("/production-runs/:id", production.UpdateProductionHandler())
	protected.Delete("/production-runs/:id", production.DeleteProductionHandler())

	// Vendas
	protected.Get("/sales", sales.ListSalesHandler())
	protected.Post("/sales", sales.CreateSaleHandler())
	protected.Put("/sales/:id", sales.UpdateSaleHandler())
	protected.Delete("/sales/:id", sales.DeleteSaleHandler())

	// Dashboard e relatórios
	protected.Get("/dashboard/metrics", dashboard.MetricsHandler())
	protected.Get("/reports/:kind", reports.DownloadReportHandler())

	// Trilha de auditoria
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())

	// Administração de usuários
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))
	adminRoutes.Get("/users", admin.ListUsersHandler())
	adminRoutes.Put("/users/:id/role", admin.UpdateUserRoleHandler())

	logger.L.Info().Str("port", cfg.HTTPPort).Msg("servidor no ar")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logger.L.Fatal().Err(err).Msg("servidor caiu")
	}
}

// errorHandler traduz os erros do ledger para HTTP, então os handlers podem
// só retornar o erro cru.
func errorHandler(c *fiber.Ctx, err error) error {
	var ve *ledger.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Error()})
	}
	if errors.Is(err, ledger.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Registro não encontrado"})
	}
	var ioe *ledger.IOError
	if errors.As(err, &ioe) {
		logger.L.Error().Err(ioe).Msg("falha de acesso ao banco")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao acessar o banco de dados"})
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	logger.L.Error().Err(err).Msg("erro inesperado")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro inesperado no servidor"})
}
