package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// CustomErrorHandler maps unhandled errors onto the response shape each
// surface expects: API routes get the {success:false, message} JSON envelope,
// everything else gets a plain error page. Echo routes wrong verbs here too,
// which is how the API's 405 responses pick up the JSON envelope.
func CustomErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Something went wrong. Please try again later."

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok && msg != "" {
			message = msg
		} else {
			switch code {
			case http.StatusNotFound:
				message = "Route not found"
			case http.StatusMethodNotAllowed:
				message = "Method not allowed"
			case http.StatusUnsupportedMediaType:
				message = "Unsupported media type"
			case http.StatusBadRequest:
				message = "The request could not be processed."
			}
		}
	}

	c.Logger().Error(err)

	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		if jsonErr := c.JSON(code, map[string]interface{}{
			"success": false,
			"message": message,
		}); jsonErr != nil {
			c.Logger().Error(jsonErr)
		}
		return
	}

	if renderErr := c.Render(code, "payment_status.html", map[string]interface{}{
		"Title":   "Terjadi Kesalahan",
		"Message": message,
	}); renderErr != nil {
		c.Logger().Error(renderErr)
		c.String(code, message)
	}
}
