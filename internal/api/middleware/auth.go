package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/leon37/StudentHub/internal/api/response"
	"github.com/leon37/StudentHub/internal/model"
)

const claimsContextKey = "auth_claims"

// TokenVerifier resolves a bearer token into an identity.
type TokenVerifier interface {
	Verify(token string) (model.AuthClaims, error)
}

// JWTAuth rejects requests without a valid "Authorization: Bearer <token>" header.
// Every failure gets the same 401 body; the reason is only logged.
func JWTAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 解析 Header，格式必须是 "Bearer <token>"
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			reject(c, "authorization header missing", nil)
			return
		}
		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || scheme != "Bearer" || token == "" {
			reject(c, "authorization header malformed", nil)
			return
		}

		// 2. 校验 Token
		claims, err := verifier.Verify(token)
		if err != nil {
			reject(c, "token rejected", err)
			return
		}

		// 3. 注入 Context
		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the identity stored by JWTAuth.
func ClaimsFrom(c *gin.Context) (model.AuthClaims, bool) {
	value, ok := c.Get(claimsContextKey)
	if !ok {
		return model.AuthClaims{}, false
	}
	claims, ok := value.(model.AuthClaims)
	return claims, ok
}

func reject(c *gin.Context, reason string, err error) {
	slog.DebugContext(c.Request.Context(), "unauthorized request",
		"reason", reason,
		"path", c.Request.URL.Path,
		"request_id", RequestIDFromContext(c),
		"error", err,
	)
	response.Error(c, http.StatusUnauthorized, "Unauthorized")
}
