package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/bizledger/bizledger-be/internal/core/auth"
	"github.com/bizledger/bizledger-be/internal/core/email"
	"github.com/bizledger/bizledger-be/internal/core/export"
	"github.com/bizledger/bizledger-be/internal/core/notification"
	"github.com/bizledger/bizledger-be/internal/core/numbering"
	gateway "github.com/bizledger/bizledger-be/internal/core/payment"
	"github.com/bizledger/bizledger-be/internal/core/upload"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/handlers"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/repositories"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/services"
	"github.com/bizledger/bizledger-be/internal/shared/config"
	"github.com/bizledger/bizledger-be/internal/shared/database"
	"github.com/bizledger/bizledger-be/internal/shared/logger"
)

// @title BizLedger API
// @version 1.0
// @description Accounting and budgeting backend for small businesses.
// @BasePath /
func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.Env)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Repositories
	contactRepo := repositories.NewContactRepo(db)
	productRepo := repositories.NewProductRepo(db)
	accountRepo := repositories.NewAnalyticalAccountRepo(db)
	ruleRepo := repositories.NewAutoAnalyticalRuleRepo(db)
	poRepo := repositories.NewPurchaseOrderRepo(db)
	soRepo := repositories.NewSalesOrderRepo(db)
	billRepo := repositories.NewVendorBillRepo(db)
	invoiceRepo := repositories.NewCustomerInvoiceRepo(db)
	paymentRepo := repositories.NewPaymentRepo(db)
	budgetRepo := repositories.NewBudgetRepo(db)
	portalOrderRepo := repositories.NewPortalPaymentOrderRepo(db)
	userRepo := auth.NewUserRepo(db)
	notifRepo := notification.NewRepo(db)

	// Core services
	numbers := numbering.NewGenerator(db)
	renderer := export.NewPDFRenderer()

	var emailProvider email.Provider
	switch cfg.EmailProvider {
	case "brevo":
		emailProvider = email.NewBrevoProvider(cfg.BrevoAPIKey, cfg.EmailFrom, cfg.EmailFromName)
	case "resend":
		emailProvider = email.NewResendProvider(cfg.ResendAPIKey, cfg.EmailFrom, cfg.EmailFromName)
	default:
		log.Warn().Msg("no email provider configured, outbound mail disabled")
	}
	mailer := email.NewService(emailProvider, cfg.BusinessName)

	notifier := notification.NewService(notifRepo)

	// The manual gateway doubles as the QR source for invoice PDFs,
	// so it is constructed even when Razorpay handles checkout.
	manualGateway := gateway.NewManualGateway(cfg.UPIVirtualAddress, cfg.BusinessName)
	var gw gateway.Gateway = manualGateway
	if cfg.PaymentMode == "razorpay" {
		gw = gateway.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	}

	var files upload.Provider
	if cfg.StorageProvider == "s3" {
		files, err = upload.NewS3Provider(cfg.S3AccessKeyID, cfg.S3SecretKey, cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialise s3 storage")
		}
	} else {
		files = upload.NewLocalProvider(cfg.LocalStorageDir, cfg.LocalStorageURL)
	}

	tokens := auth.NewJWTManager(cfg.JWTSecret)
	authService := auth.NewService(userRepo, tokens, mailer)

	// Domain services
	pricing := services.NewPricingService(productRepo)
	classifier := services.NewClassifierService(ruleRepo)
	contactService := services.NewContactService(contactRepo, authService)
	productService := services.NewProductService(productRepo, accountRepo)
	accountService := services.NewAnalyticalAccountService(accountRepo)
	ruleService := services.NewAutoAnalyticalRuleService(ruleRepo, accountRepo, productRepo, classifier)
	poService := services.NewPurchaseOrderService(poRepo, contactRepo, pricing, classifier, numbers, renderer, files, cfg.BusinessName)
	soService := services.NewSalesOrderService(soRepo, contactRepo, pricing, classifier, numbers, renderer, files, notifier, cfg.BusinessName)
	billService := services.NewVendorBillService(billRepo, poRepo, contactRepo, pricing, classifier, numbers, renderer, files, cfg.BusinessName)
	invoiceService := services.NewCustomerInvoiceService(invoiceRepo, soRepo, contactRepo, pricing, classifier, numbers, renderer, files, mailer, manualGateway, cfg.BusinessName)
	paymentService := services.NewPaymentService(paymentRepo, invoiceRepo, billRepo, contactRepo, numbers, mailer, notifier)
	budgetService := services.NewBudgetService(budgetRepo, accountRepo, billRepo, invoiceRepo)
	reportService := services.NewReportService(contactRepo, productRepo, accountRepo, billRepo, invoiceRepo, budgetService)
	portalService := services.NewPortalService(contactRepo, invoiceRepo, soRepo, portalOrderRepo, paymentService, gw)

	// Handlers
	authHandler := auth.NewHandler(authService)
	contactHandler := handlers.NewContactHandler(contactService)
	productHandler := handlers.NewProductHandler(productService)
	accountHandler := handlers.NewAnalyticalAccountHandler(accountService)
	ruleHandler := handlers.NewAutoAnalyticalRuleHandler(ruleService)
	poHandler := handlers.NewPurchaseOrderHandler(poService)
	soHandler := handlers.NewSalesOrderHandler(soService)
	billHandler := handlers.NewVendorBillHandler(billService)
	invoiceHandler := handlers.NewCustomerInvoiceHandler(invoiceService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	reportHandler := handlers.NewReportHandler(reportService)
	portalHandler := handlers.NewPortalHandler(portalService)
	notifHandler := handlers.NewNotificationHandler(notifier)

	app := fiber.New(fiber.Config{
		AppName: cfg.BusinessName + " API",
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	if cfg.StorageProvider != "s3" {
		app.Static("/files", cfg.LocalStorageDir)
	}

	api := app.Group("/api")
	protected := auth.Middleware(tokens)
	adminOnly := auth.RequireRole(auth.RoleAdmin)
	portalOnly := auth.RequireRole(auth.RolePortal)

	// Auth
	authRoutes := api.Group("/auth")
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/refresh", authHandler.Refresh)
	authRoutes.Post("/forgot-password", authHandler.ForgotPassword)
	authRoutes.Post("/reset-password", authHandler.ResetPassword)
	authRoutes.Post("/register", protected, adminOnly, authHandler.Register)
	authRoutes.Get("/me", protected, authHandler.Me)
	authRoutes.Put("/profile", protected, authHandler.UpdateProfile)
	authRoutes.Post("/change-password", protected, authHandler.ChangePassword)

	// Notifications are visible to any signed-in user.
	notifications := api.Group("/notifications", protected)
	notifications.Get("/", notifHandler.List)
	notifications.Get("/unread-count", notifHandler.UnreadCount)
	notifications.Post("/:id/read", notifHandler.MarkRead)
	notifications.Post("/read-all", notifHandler.MarkAllRead)

	// Back office
	admin := api.Group("", protected, adminOnly)

	contacts := admin.Group("/contacts")
	contacts.Post("/", contactHandler.Create)
	contacts.Get("/", contactHandler.List)
	contacts.Get("/:id", contactHandler.Get)
	contacts.Put("/:id", contactHandler.Update)
	contacts.Post("/:id/archive", contactHandler.ToggleArchive)
	contacts.Delete("/:id", contactHandler.Delete)

	products := admin.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.Get)
	products.Put("/:id", productHandler.Update)
	products.Post("/:id/archive", productHandler.ToggleArchive)
	products.Delete("/:id", productHandler.Delete)

	accounts := admin.Group("/analytical-accounts")
	accounts.Post("/", accountHandler.Create)
	accounts.Get("/", accountHandler.List)
	accounts.Get("/tree", accountHandler.Tree)
	accounts.Get("/:id", accountHandler.Get)
	accounts.Put("/:id", accountHandler.Update)
	accounts.Post("/:id/archive", accountHandler.ToggleArchive)
	accounts.Delete("/:id", accountHandler.Delete)

	rules := admin.Group("/auto-analytical-rules")
	rules.Post("/", ruleHandler.Create)
	rules.Get("/", ruleHandler.List)
	rules.Get("/types", ruleHandler.RuleTypes)
	rules.Post("/test", ruleHandler.TestClassification)
	rules.Get("/:id", ruleHandler.Get)
	rules.Put("/:id", ruleHandler.Update)
	rules.Post("/:id/activate", ruleHandler.ToggleActive)
	rules.Delete("/:id", ruleHandler.Delete)

	purchaseOrders := admin.Group("/purchase-orders")
	purchaseOrders.Post("/", poHandler.Create)
	purchaseOrders.Get("/", poHandler.List)
	purchaseOrders.Get("/:id", poHandler.Get)
	purchaseOrders.Put("/:id", poHandler.Update)
	purchaseOrders.Post("/:id/confirm", poHandler.Confirm)
	purchaseOrders.Post("/:id/receive", poHandler.MarkReceived)
	purchaseOrders.Post("/:id/cancel", poHandler.Cancel)
	purchaseOrders.Post("/:id/pdf", poHandler.GeneratePDF)
	purchaseOrders.Delete("/:id", poHandler.Delete)

	salesOrders := admin.Group("/sales-orders")
	salesOrders.Post("/", soHandler.Create)
	salesOrders.Get("/", soHandler.List)
	salesOrders.Get("/:id", soHandler.Get)
	salesOrders.Put("/:id", soHandler.Update)
	salesOrders.Post("/:id/confirm", soHandler.Confirm)
	salesOrders.Post("/:id/deliver", soHandler.MarkDelivered)
	salesOrders.Post("/:id/cancel", soHandler.Cancel)
	salesOrders.Post("/:id/pdf", soHandler.GeneratePDF)
	salesOrders.Delete("/:id", soHandler.Delete)

	bills := admin.Group("/vendor-bills")
	bills.Post("/", billHandler.Create)
	bills.Get("/", billHandler.List)
	bills.Get("/:id", billHandler.Get)
	bills.Put("/:id", billHandler.Update)
	bills.Post("/:id/post", billHandler.Post)
	bills.Post("/:id/cancel", billHandler.Cancel)
	bills.Post("/:id/pdf", billHandler.GeneratePDF)
	bills.Delete("/:id", billHandler.Delete)

	invoices := admin.Group("/customer-invoices")
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.Get)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Post("/:id/post", invoiceHandler.Post)
	invoices.Post("/:id/cancel", invoiceHandler.Cancel)
	invoices.Post("/:id/pdf", invoiceHandler.GeneratePDF)
	invoices.Post("/:id/send-email", invoiceHandler.SendEmail)
	invoices.Delete("/:id", invoiceHandler.Delete)

	payments := admin.Group("/payments")
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)
	payments.Get("/:id", paymentHandler.Get)
	payments.Put("/:id", paymentHandler.Update)
	payments.Post("/:id/reconcile", paymentHandler.ToggleReconcile)
	payments.Delete("/:id", paymentHandler.Delete)

	budgets := admin.Group("/budgets")
	budgets.Post("/", budgetHandler.Create)
	budgets.Get("/", budgetHandler.List)
	budgets.Get("/performance", budgetHandler.Portfolio)
	budgets.Get("/:id", budgetHandler.Get)
	budgets.Put("/:id", budgetHandler.Update)
	budgets.Get("/:id/revisions", budgetHandler.ListRevisions)
	budgets.Get("/:id/performance", budgetHandler.Performance)
	budgets.Post("/:id/archive", budgetHandler.ToggleArchive)
	budgets.Delete("/:id", budgetHandler.Delete)

	reports := admin.Group("/reports")
	reports.Get("/dashboard", reportHandler.Dashboard)
	reports.Get("/monthly-trends", reportHandler.MonthlyTrends)
	reports.Get("/sales-summary", reportHandler.SalesSummary)
	reports.Get("/purchase-summary", reportHandler.PurchaseSummary)
	reports.Get("/analytical-summary", reportHandler.AnalyticalSummary)
	reports.Get("/receivables-aging", reportHandler.ReceivablesAging)
	reports.Get("/payables-aging", reportHandler.PayablesAging)
	reports.Get("/aging/:kind/excel", reportHandler.AgingExcel)
	reports.Get("/budget-performance/excel", reportHandler.BudgetPortfolioExcel)

	// Customer self-service
	portal := api.Group("/portal", protected, portalOnly)
	portal.Get("/profile", portalHandler.Profile)
	portal.Put("/profile", portalHandler.UpdateProfile)
	portal.Get("/invoices", portalHandler.ListInvoices)
	portal.Get("/invoices/:id", portalHandler.GetInvoice)
	portal.Post("/invoices/:id/pay", portalHandler.InitiatePayment)
	portal.Post("/payments/callback", portalHandler.PaymentCallback)
	portal.Get("/orders", portalHandler.ListOrders)
	portal.Get("/orders/:id", portalHandler.GetOrder)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting api server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
