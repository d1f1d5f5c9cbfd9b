package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/bizledger/bizledger-be/internal/core/email"
	"github.com/bizledger/bizledger-be/internal/core/notification"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/repositories"
	"github.com/bizledger/bizledger-be/internal/modules/accounting/services"
	"github.com/bizledger/bizledger-be/internal/shared/config"
	"github.com/bizledger/bizledger-be/internal/shared/database"
	"github.com/bizledger/bizledger-be/internal/shared/logger"
)

// The scheduler runs alongside the API process and owns the recurring
// jobs: the morning overdue-invoice sweep and the evening digest.
func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.Env)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	contactRepo := repositories.NewContactRepo(db)
	productRepo := repositories.NewProductRepo(db)
	accountRepo := repositories.NewAnalyticalAccountRepo(db)
	billRepo := repositories.NewVendorBillRepo(db)
	invoiceRepo := repositories.NewCustomerInvoiceRepo(db)
	budgetRepo := repositories.NewBudgetRepo(db)

	var emailProvider email.Provider
	switch cfg.EmailProvider {
	case "brevo":
		emailProvider = email.NewBrevoProvider(cfg.BrevoAPIKey, cfg.EmailFrom, cfg.EmailFromName)
	case "resend":
		emailProvider = email.NewResendProvider(cfg.ResendAPIKey, cfg.EmailFrom, cfg.EmailFromName)
	}
	mailer := email.NewService(emailProvider, cfg.BusinessName)
	notifier := notification.NewService(notification.NewRepo(db))

	budgetService := services.NewBudgetService(budgetRepo, accountRepo, billRepo, invoiceRepo)
	reportService := services.NewReportService(contactRepo, productRepo, accountRepo, billRepo, invoiceRepo, budgetService)

	c := cron.New()

	if _, err := c.AddFunc(cfg.OverdueCheckSchedule, func() {
		runOverdueCheck(invoiceRepo, notifier, mailer)
	}); err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.OverdueCheckSchedule).Msg("invalid overdue check schedule")
	}

	if _, err := c.AddFunc(cfg.DailySummarySchedule, func() {
		runDailySummary(reportService, notifier, mailer)
	}); err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.DailySummarySchedule).Msg("invalid daily summary schedule")
	}

	c.Start()
	log.Info().
		Str("overdue_check", cfg.OverdueCheckSchedule).
		Str("daily_summary", cfg.DailySummarySchedule).
		Msg("scheduler started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx := c.Stop()
	<-ctx.Done()
	log.Info().Msg("scheduler stopped")
}

func runOverdueCheck(invoiceRepo repositories.CustomerInvoiceRepo, notifier *notification.Service, mailer *email.Service) {
	overdue, err := invoiceRepo.ListOverdue(time.Now().UTC())
	if err != nil {
		log.Error().Err(err).Msg("overdue check failed")
		return
	}
	if len(overdue) == 0 {
		log.Info().Msg("overdue check: nothing past due")
		return
	}

	totalDue := decimal.Zero
	for _, invoice := range overdue {
		totalDue = totalDue.Add(invoice.AmountDue)
	}

	message := fmt.Sprintf("%d invoice(s) are past due with %s outstanding", len(overdue), totalDue.StringFixed(2))
	if err := notifier.NotifyAdmins("Overdue invoices", message, "alert"); err != nil {
		log.Error().Err(err).Msg("overdue notification failed")
	}

	recipients, err := notifier.AdminRecipients()
	if err != nil {
		log.Error().Err(err).Msg("failed to load admin recipients")
		return
	}
	for _, r := range recipients {
		if err := mailer.SendOverdueAlert(r.Email, len(overdue), totalDue.StringFixed(2)); err != nil {
			log.Warn().Err(err).Str("email", r.Email).Msg("overdue alert email failed")
		}
	}
	log.Info().Int("invoices", len(overdue)).Str("total_due", totalDue.StringFixed(2)).Msg("overdue check completed")
}

func runDailySummary(reports *services.ReportService, notifier *notification.Service, mailer *email.Service) {
	summary, err := reports.Dashboard()
	if err != nil {
		log.Error().Err(err).Msg("daily summary failed")
		return
	}

	recipients, err := notifier.AdminRecipients()
	if err != nil {
		log.Error().Err(err).Msg("failed to load admin recipients")
		return
	}
	for _, r := range recipients {
		if err := mailer.SendDailySummary(r.Email, summary); err != nil {
			log.Warn().Err(err).Str("email", r.Email).Msg("daily summary email failed")
		}
	}
	log.Info().Int("recipients", len(recipients)).Msg("daily summary sent")
}
