package response

import (
	"errors"
	"fmt"
	"net/http"

	"image-insights-srv/pkg/discord"
	pkgErrors "image-insights-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: codeOK,
		Message:   messageOK,
		Data:      data,
	})
}

// Error writes an error response. HTTPError values keep their status code;
// anything else becomes a 500 and is forwarded to the Discord webhook.
func Error(c *gin.Context, err error, discordClient discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	notifyInternalError(c, err, discordClient)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: codeInternalError,
		Message:   messageInternalError,
	})
}

// Unauthorized writes a 401 response with the standard envelope.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// PanicError writes a 500 response for a recovered panic and notifies Discord.
func PanicError(c *gin.Context, recovered any, discordClient discord.IDiscord) {
	notifyInternalError(c, fmt.Errorf("panic: %v", recovered), discordClient)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: codeInternalError,
		Message:   messageInternalError,
	})
}

func notifyInternalError(c *gin.Context, err error, discordClient discord.IDiscord) {
	if discordClient == nil {
		return
	}
	discordClient.Report(c.Request.Context(), discord.Incident{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Detail: err.Error(),
	})
}
