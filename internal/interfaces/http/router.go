package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/homeexotica-crm/internal/application/analytics"
	"github.com/jhoicas/homeexotica-crm/internal/application/auth"
	"github.com/jhoicas/homeexotica-crm/internal/application/billing"
	"github.com/jhoicas/homeexotica-crm/internal/application/crm"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CustomerUC  *crm.CustomerUseCase
	LeadUC      *crm.LeadUseCase
	ImportUC    *crm.LeadImportUseCase
	FollowUpUC  *crm.FollowUpUseCase
	DocumentUC  *crm.DocumentUseCase
	InvoiceUC   *billing.InvoiceUseCase
	InvoicePDF  *billing.PDFUseCase
	DashboardUC *appanalytics.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth y sesión (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/otp", authHandler.RequestOTP)
	authGroup.Post("/verify", authHandler.VerifyOTP)

	sessionHandler := NewSessionHandler(deps.AuthUC)
	api.Get("/session", sessionHandler.Get)
	api.Get("/session/route", sessionHandler.Route)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))

	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Patch("/:id", customerHandler.Update)
	customers.Get("/:id/follow-ups", customerHandler.FollowUps)

	leads := protected.Group("/leads")
	leadHandler := NewLeadHandler(deps.LeadUC)
	importHandler := NewImportHandler(deps.ImportUC)
	leads.Get("/", leadHandler.List)
	leads.Post("/", leadHandler.Create)
	leads.Post("/import/preview", importHandler.Preview)
	leads.Post("/import/confirm", importHandler.Confirm)
	leads.Patch("/:id", leadHandler.Update)
	leads.Patch("/:id/status", leadHandler.UpdateStatus)

	followUps := protected.Group("/follow-ups")
	followUpHandler := NewFollowUpHandler(deps.FollowUpUC)
	followUps.Get("/", followUpHandler.List)
	followUps.Post("/", followUpHandler.Create)
	followUps.Patch("/:id", followUpHandler.Update)
	followUps.Patch("/:id/complete", followUpHandler.Complete)

	documents := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	documents.Get("/", documentHandler.List)
	documents.Post("/", documentHandler.Upload)
	documents.Delete("/:id", documentHandler.Delete)

	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDF)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Post("/preview", invoiceHandler.Preview)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Patch("/:id/payment-status", invoiceHandler.UpdatePaymentStatus)

	protected.Get("/payments", invoiceHandler.Payments)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)
}
