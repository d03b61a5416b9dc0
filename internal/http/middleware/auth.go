package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	types "github.com/sumitk238/shopping-cart/internal/domain"
	"github.com/sumitk238/shopping-cart/internal/pkg/logger"
)

type AuthMiddleware struct {
	log      *logger.Logger
	username string
	password string
}

func NewAuthMiddleware(log *logger.Logger, username, password string) *AuthMiddleware {
	middlewareLog := log.With("middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLog, username: username, password: password}
}

// RequireBasicAuth guards the cart routes with HTTP basic auth and answers
// 401 with a JSON problem body when credentials are missing or wrong.
func (am *AuthMiddleware) RequireBasicAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if !ok || !am.credentialsMatch(user, pass) {
			am.log.Debug("Rejected request without valid credentials", "path", c.Request.URL.Path)
			c.Header("WWW-Authenticate", `Basic realm="shopping-cart"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.ProblemDetails{
				Reason: "Full authentication is required to access this resource",
			})
			return
		}
		c.Next()
	}
}

func (am *AuthMiddleware) credentialsMatch(user, pass string) bool {
	userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(am.username)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(am.password)) == 1
	return userMatch && passMatch
}
