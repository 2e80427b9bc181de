package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/appointment-booking-backend/auth"
)

// SessionCookie is the HttpOnly cookie carrying the signed session token.
const SessionCookie = "sessionToken"

// SessionAuth rejects requests without a valid session cookie and stores
// the caller's identity in the request context. Authorization failures
// abort before any validation runs.
func SessionAuth(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)

		if err != nil || len(token) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		identity, err := verifier.Identify(token)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		c.Set("identity", identity)
	}
}
