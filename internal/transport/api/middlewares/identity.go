package middlewares

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// IdentityHeader заголовок с внешним ключом пользователя. Проставляется доверенным
	// фронтом (ботом) после его собственной аутентификации.
	IdentityHeader = "X-Identity"
	// UsernameHeader необязательное отображаемое имя пользователя.
	UsernameHeader = "X-Username"
	// InternalTokenHeader заголовок общего секрета для внутренних колбеков платежного рельса.
	InternalTokenHeader = "X-Internal-Token"

	identityContextKey = "identity"
	usernameContextKey = "username"
)

// IdentityRequired требует непустой IdentityHeader и кладет его в контекст запроса.
func IdentityRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := c.GetHeader(IdentityHeader)
		if identity == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(identityContextKey, identity)
		c.Set(usernameContextKey, c.GetHeader(UsernameHeader))
		c.Next()
	}
}

// InternalTokenRequired сверяет общий секрет внутренних колбеков в постоянном времени.
func InternalTokenRequired(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(InternalTokenHeader)
		if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// GetIdentity возвращает identity из контекста запроса.
func GetIdentity(c *gin.Context) string {
	return c.GetString(identityContextKey)
}

// GetUsername возвращает отображаемое имя из контекста запроса.
func GetUsername(c *gin.Context) string {
	return c.GetString(usernameContextKey)
}
