package http_access_middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	http_common "github.com/mblais/connect4/core/internal/delivery/http/common"
	http_init "github.com/mblais/connect4/core/internal/delivery/http/init"
)

// ReadOnlyBadGatewayMiddleware rejects game commands on a read-only
// instance. List and detail endpoints keep working, and so does the
// login flow, since a token is needed to read anything at all.
func ReadOnlyBadGatewayMiddleware(mode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if mode != "RO" {
			c.Next()
			return
		}

		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}
		if strings.HasPrefix(c.Request.URL.Path, http_init.APIPrefix+"/users/") {
			c.Next()
			return
		}

		c.JSON(http.StatusBadGateway, http_common.ErrorResponse{
			Message: "Game commands not allowed on a read-only instance",
		})
		c.Abort()
	}
}
