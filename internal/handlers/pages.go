package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"traderid_server/internal/models"
)

// PageHandler renders the marketing site and the payment status pages.
type PageHandler struct {
	midtransClientKey string
	snapScriptURL     string
}

func NewPageHandler(midtransClientKey string, isProduction bool) *PageHandler {
	scriptURL := "https://app.sandbox.midtrans.com/snap/snap.js"
	if isProduction {
		scriptURL = "https://app.midtrans.com/snap/snap.js"
	}
	return &PageHandler{
		midtransClientKey: midtransClientKey,
		snapScriptURL:     scriptURL,
	}
}

// Home renders the landing page with the pricing catalog.
func (h *PageHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", map[string]interface{}{
		"Title":             "The Trader ID",
		"Plans":             models.PricingPlans,
		"MidtransClientKey": h.midtransClientKey,
		"SnapScriptURL":     h.snapScriptURL,
	})
}

// PaymentFinish renders the page Snap redirects to after a completed payment.
func (h *PageHandler) PaymentFinish(c echo.Context) error {
	return h.renderStatus(c, "Pembayaran Berhasil",
		"Terima kasih! Pembayaran Anda telah berhasil diproses. Cek email Anda untuk detail pesanan dan tautan bergabung ke komunitas.")
}

// PaymentPending renders the page for payments awaiting settlement.
func (h *PageHandler) PaymentPending(c echo.Context) error {
	return h.renderStatus(c, "Pembayaran Tertunda",
		"Pembayaran Anda sedang menunggu konfirmasi. Selesaikan pembayaran sesuai instruksi yang dikirim ke email Anda.")
}

// PaymentError renders the page for failed payments.
func (h *PageHandler) PaymentError(c echo.Context) error {
	return h.renderStatus(c, "Pembayaran Gagal",
		"Maaf, pembayaran Anda tidak dapat diproses. Silakan coba lagi atau hubungi kami jika masalah berlanjut.")
}

func (h *PageHandler) renderStatus(c echo.Context, title, message string) error {
	return c.Render(http.StatusOK, "payment_status.html", map[string]interface{}{
		"Title":   title,
		"Message": message,
		"OrderID": c.QueryParam("order_id"),
	})
}
