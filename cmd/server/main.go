package main

import (
	"html/template"
	"io"
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"traderid_server/internal/config"
	"traderid_server/internal/handlers"
	"traderid_server/internal/middleware"
	"traderid_server/internal/services"
)

// TemplateRenderer is a html/template renderer for Echo. The site has a
// handful of flat pages, so a single parsed set is enough.
type TemplateRenderer struct {
	templates *template.Template
}

func NewTemplateRenderer() *TemplateRenderer {
	funcs := template.FuncMap{
		"rupiah": services.FormatRupiah,
	}
	return &TemplateRenderer{
		templates: template.Must(template.New("").Funcs(funcs).ParseGlob("web/templates/*.html")),
	}
}

// Render renders a template document
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}

func main() {
	cfg := config.Load()

	// Services
	midtransService := services.NewMidtransService(cfg)
	emailService := services.NewEmailService(cfg)
	discordService := services.NewDiscordService(cfg)
	notificationService := services.NewNotificationService(cfg, emailService, discordService)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.HTTPErrorHandler = middleware.CustomErrorHandler

	// Template renderer
	e.Renderer = NewTemplateRenderer()

	// Static file serving
	e.Static("/static", "web/static")

	// Handlers
	pageHandler := handlers.NewPageHandler(cfg.MidtransClientKey, cfg.MidtransIsProduction)
	paymentHandler := handlers.NewPaymentHandler(midtransService, cfg.BaseURL)
	webhookHandler := handlers.NewWebhookHandler(notificationService, midtransService, cfg.MidtransVerifySignature)

	// Marketing site and payment status pages
	e.GET("/", pageHandler.Home)
	e.GET("/payment/finish", pageHandler.PaymentFinish)
	e.GET("/payment/pending", pageHandler.PaymentPending)
	e.GET("/payment/error", pageHandler.PaymentError)

	// Checkout and gateway webhook
	e.POST("/api/payment", paymentHandler.CreatePayment)
	e.POST("/api/webhook", webhookHandler.HandleNotification)

	log.Printf("Server starting on port %s", cfg.AppPort)
	e.Logger.Fatal(e.Start(":" + cfg.AppPort))
}
