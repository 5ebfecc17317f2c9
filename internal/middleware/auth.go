package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/session"
)

// RequireAdminSession gates admin routes on a persisted backend token. The
// backend stays the authority on the token; only the expiry claim is checked
// locally so obviously dead sessions fail fast instead of round-tripping.
func RequireAdminSession(storage session.Storage) gin.HandlerFunc {
	return requireSession(storage, session.KeyAdminToken, "admin")
}

func RequireStudentSession(storage session.Storage) gin.HandlerFunc {
	return requireSession(storage, session.KeyStudentToken, "student")
}

func requireSession(storage session.Storage, key, kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := storage.Get(key)
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": kind + " session required"})
			return
		}

		if expired(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": kind + " session expired"})
			return
		}

		c.Next()
	}
}

// expired parses the token without verifying its signature and reports
// whether the exp claim has passed. Tokens that do not parse as JWTs pass
// through; the backend rejects them if they are junk.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
