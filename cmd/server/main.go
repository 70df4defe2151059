package main

import (
	"log"
	"strings"

	"zag-backend/internal/auth"
	"zag-backend/internal/catalog"
	"zag-backend/internal/config"
	"zag-backend/internal/customers"
	"zag-backend/internal/database"
	"zag-backend/internal/ledger"
	"zag-backend/internal/reports"
	"zag-backend/internal/sales"
	"zag-backend/internal/stats"
	"zag-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	db := database.Init(cfg)
	st := store.NewGormStore(db)

	ledgerSvc := ledger.NewService(st)
	catalogSvc := catalog.NewService(st, ledgerSvc)
	customerSvc := customers.NewService(st)
	salesSvc := sales.NewService(st, catalogSvc, ledgerSvc, customerSvc)
	statsSvc := stats.NewService(st)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-owner", auth.RegisterOwnerHandler(cfg, st))
	api.Post("/auth/login", auth.LoginHandler(cfg, st))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler(st))

	// Product catalog
	protected.Get("/products", catalog.ListProductsHandler(catalogSvc))
	protected.Post("/products", catalog.CreateProductHandler(catalogSvc))
	protected.Put("/products/:id", catalog.UpdateProductHandler(catalogSvc))
	protected.Delete("/products/:id", catalog.DeleteProductHandler(catalogSvc))

	// Customer directory
	protected.Get("/customers", customers.ListCustomersHandler(customerSvc))
	protected.Get("/customers/suggest-username", customers.SuggestUsernameHandler(customerSvc))
	protected.Post("/customers", customers.CreateCustomerHandler(customerSvc))
	protected.Put("/customers/:id", customers.UpdateCustomerHandler(customerSvc))
	protected.Delete("/customers/:id", customers.DeleteCustomerHandler(customerSvc))

	// Stock ledger
	protected.Post("/stock-movements", ledger.CreateMovementHandler(ledgerSvc))
	protected.Get("/stock-entries", ledger.ListEntriesHandler(ledgerSvc))
	protected.Get("/stock-levels", ledger.ListLevelsHandler(ledgerSvc))
	protected.Get("/stock-levels/:productId", ledger.GetLevelHandler(ledgerSvc))

	// Sales
	protected.Get("/sales/summary", stats.SalesSummaryHandler(statsSvc))
	protected.Post("/sales", sales.RecordSaleHandler(salesSvc))
	protected.Get("/sales", sales.ListSalesHandler(salesSvc))

	// Dashboard
	protected.Get("/dashboard/stats", stats.DashboardHandler(statsSvc))

	// Reports
	protected.Get("/reports/sales.xlsx", reports.SalesReportHandler(salesSvc))
	protected.Get("/reports/stock.xlsx", reports.StockReportHandler(ledgerSvc))

	log.Println("Server listening on port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
