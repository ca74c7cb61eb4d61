package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/banquet-admin/internal/audit"
	"github.com/BruksfildServices01/banquet-admin/internal/config"
	"github.com/BruksfildServices01/banquet-admin/internal/handlers"
	infraRepo "github.com/BruksfildServices01/banquet-admin/internal/infra/repository"
	"github.com/BruksfildServices01/banquet-admin/internal/middleware"
	"github.com/BruksfildServices01/banquet-admin/internal/uistate"
	ucBooking "github.com/BruksfildServices01/banquet-admin/internal/usecase/booking"
	ucInvoice "github.com/BruksfildServices01/banquet-admin/internal/usecase/invoice"
	ucReport "github.com/BruksfildServices01/banquet-admin/internal/usecase/report"
	ucVenue "github.com/BruksfildServices01/banquet-admin/internal/usecase/venue"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	auditDispatcher *audit.Dispatcher,
	uiStore uistate.Store,
) {
	tz := cfg.Timezone

	// ======================================================
	// INFRA
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	invoiceRepo := infraRepo.NewInvoiceGormRepository(db)
	venueRepo := infraRepo.NewVenueGormRepository(db)
	reportRepo := infraRepo.NewReportGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		ucBooking.NewCreateBooking(bookingRepo, auditDispatcher, tz),
		ucBooking.NewUpdateBooking(bookingRepo, auditDispatcher, tz),
		ucBooking.NewConfirmBooking(bookingRepo, auditDispatcher, tz),
		ucBooking.NewCancelBooking(bookingRepo, auditDispatcher, tz),
		ucBooking.NewDeleteBooking(bookingRepo, auditDispatcher),
		ucBooking.NewGetBooking(bookingRepo),
		ucBooking.NewListBookings(bookingRepo),
		ucBooking.NewCalendar(bookingRepo, tz),
		tz,
	)

	invoiceHandler := handlers.NewInvoiceHandler(
		ucInvoice.NewCreateInvoice(invoiceRepo, auditDispatcher, tz, cfg.DefaultTaxRate),
		ucInvoice.NewUpdateInvoice(invoiceRepo, auditDispatcher, tz),
		ucInvoice.NewDeleteInvoice(invoiceRepo, auditDispatcher),
		ucInvoice.NewGetInvoice(invoiceRepo, tz),
		ucInvoice.NewListInvoices(invoiceRepo, tz),
		tz,
	)

	venueHandler := handlers.NewVenueHandler(
		ucVenue.NewListVenues(venueRepo, tz),
		ucVenue.NewCreateVenue(venueRepo, auditDispatcher, tz),
		ucVenue.NewUpdateVenue(venueRepo, auditDispatcher, tz),
		ucVenue.NewCheckAvailability(venueRepo, tz),
	)

	reportHandler := handlers.NewReportHandler(ucReport.NewGetSummary(reportRepo, tz))

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, uistate.NewService(uiStore))
	clientHandler := handlers.NewClientHandler(db, auditDispatcher)
	billingHandler := handlers.NewBillingHandler(cfg.DefaultTaxRate)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, tz)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/ui-state", meHandler.GetUIState)
			secured.PUT("/me/ui-state", meHandler.PutUIState)

			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.PATCH("/clients/:id", clientHandler.Update)

			secured.GET("/venues", venueHandler.List)
			secured.POST("/venues", venueHandler.Create)
			secured.PATCH("/venues/:id", venueHandler.Update)
			secured.GET("/venues/:id/availability", venueHandler.Availability)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/bookings", bookingHandler.List)
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PATCH("/bookings/:id", bookingHandler.Update)
			secured.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			secured.DELETE("/bookings/:id", middleware.RequireRole("admin"), bookingHandler.Delete)

			secured.GET("/calendar", bookingHandler.Calendar)

			// ------------------------------
			// INVOICES
			// ------------------------------
			secured.GET("/invoices", invoiceHandler.List)
			secured.POST("/invoices", invoiceHandler.Create)
			secured.GET("/invoices/:id", invoiceHandler.Get)
			secured.PATCH("/invoices/:id", invoiceHandler.Update)
			secured.DELETE("/invoices/:id", middleware.RequireRole("admin"), invoiceHandler.Delete)

			secured.POST("/billing/preview", billingHandler.Preview)
			secured.GET("/reports/summary", reportHandler.Summary)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
