package middleware

import (
	"net/http"
	"strings"

	"github.com/accesspass/accesspass/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const principalKey = "auth.principal"

type TokenParser interface {
	Parse(raw string) (domain.Principal, error)
}

// Auth resolves the request principal from the Authorization header. A
// missing or invalid token aborts with 401 before any handler runs; no
// guarded operation ever executes without a principal.
func Auth(tokens TokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing bearer token", "code": "unauthorized"},
			)
			return
		}

		principal, err := tokens.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid or expired token", "code": "unauthorized"},
			)
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// PrincipalFromContext returns the principal the Auth middleware resolved
// for this request.
func PrincipalFromContext(c *ginext.Context) (domain.Principal, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		return domain.Principal{}, false
	}
	principal, ok := value.(domain.Principal)
	return principal, ok
}
