package services

import (
	"html/template"

	"traderid_server/internal/models"
)

// paymentEmailData feeds both payment notification templates. PlatformLink
// is template.URL so the invite URL lands in the href verbatim; the attribute
// escaper would otherwise encode the "+" in Telegram invite paths as "&#43;".
type paymentEmailData struct {
	Status          string
	Metadata        models.OrderMetadata
	Amount          string
	PaymentType     string
	TransactionTime string
	TransactionID   string
	PlatformLink    template.URL
	SupportEmail    string
	Year            int
}

var adminEmailTemplate = template.Must(template.New("admin").Parse(`
<h2>New Payment {{.Status}}</h2>
<h3>Customer Details:</h3>
<p><strong>Name:</strong> {{.Metadata.CustomerName}}</p>
<p><strong>Email:</strong> {{.Metadata.CustomerEmail}}</p>
<p><strong>Platform:</strong> {{.Metadata.Platform}}</p>
<p><strong>Username:</strong> {{.Metadata.PlatformUsername}}</p>
<h3>Order Details:</h3>
<p><strong>Order ID:</strong> {{.Metadata.OrderID}}</p>
<p><strong>Plan:</strong> {{.Metadata.PlanName}}</p>
<p><strong>Amount:</strong> {{.Amount}}</p>
<p><strong>Payment Type:</strong> {{.PaymentType}}</p>
<p><strong>Transaction Time:</strong> {{.TransactionTime}}</p>
<p><strong>Transaction ID:</strong> {{.TransactionID}}</p>
<p><strong>Status:</strong> {{.Status}}</p>
`))

var customerEmailTemplate = template.Must(template.New("customer").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; background-color: #f9f9f9; padding: 20px;">
  <div style="text-align: center; margin-bottom: 30px;">
    <h1 style="color: #1a1a1a; margin: 0;">The Trader ID</h1>
    <p style="color: #666; margin: 5px 0;">Payment Confirmation</p>
  </div>

  <div style="background-color: white; border-radius: 10px; padding: 30px; box-shadow: 0 2px 4px rgba(0,0,0,0.1);">
    <div style="text-align: center; margin-bottom: 30px;">
      <div style="font-size: 24px; color: #00b074; margin-bottom: 10px;">Payment Successful</div>
      <div style="font-size: 32px; font-weight: bold; color: #1a1a1a;">{{.Amount}}</div>
    </div>

    <div style="margin-bottom: 30px;">
      <p style="color: #1a1a1a; font-size: 16px; margin-bottom: 20px;">Dear <strong>{{.Metadata.CustomerName}}</strong>,</p>
      <p style="color: #444; line-height: 1.5;">Thank you for your purchase! Your payment has been successfully processed. Here are your order details:</p>
    </div>

    <div style="background-color: #f8f9fa; border-radius: 8px; padding: 20px; margin-bottom: 30px;">
      <table style="width: 100%; border-collapse: collapse;">
        <tr>
          <td style="padding: 8px 0; color: #666;">Order ID:</td>
          <td style="padding: 8px 0; color: #1a1a1a; font-weight: bold;">{{.Metadata.OrderID}}</td>
        </tr>
        <tr>
          <td style="padding: 8px 0; color: #666;">Plan:</td>
          <td style="padding: 8px 0; color: #1a1a1a; font-weight: bold;">{{.Metadata.PlanName}}</td>
        </tr>
        <tr>
          <td style="padding: 8px 0; color: #666;">Payment Method:</td>
          <td style="padding: 8px 0; color: #1a1a1a; font-weight: bold;">{{.PaymentType}}</td>
        </tr>
        <tr>
          <td style="padding: 8px 0; color: #666;">Date:</td>
          <td style="padding: 8px 0; color: #1a1a1a; font-weight: bold;">{{.TransactionTime}}</td>
        </tr>
      </table>
    </div>

    {{if .PlatformLink}}
    <div style="text-align: center; margin-bottom: 30px;">
      <p style="color: #444; margin-bottom: 20px;">Click the button below to join our {{.Metadata.Platform}} community:</p>
      <a href="{{.PlatformLink}}" style="display: inline-block; background-color: #00b074; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; font-weight: bold;">Join {{.Metadata.Platform}}</a>
    </div>
    {{end}}

    <div style="border-top: 1px solid #eee; padding-top: 20px; margin-top: 20px;">
      <p style="color: #666; font-size: 14px; margin-bottom: 5px;">Need help? Contact us at:</p>
      <p style="color: #666; font-size: 14px; margin-top: 0;">{{.SupportEmail}}</p>
    </div>
  </div>

  <div style="text-align: center; margin-top: 30px;">
    <p style="color: #666; font-size: 12px; margin: 5px 0;">The Trader ID</p>
    <p style="color: #666; font-size: 12px; margin: 5px 0;">Copyright &copy; {{.Year}}. All rights reserved.</p>
  </div>
</div>
`))
