package auth

import (
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/hydroshield/specbuilder-backend/internal/users"
)

const (
	CtxFirebaseUID = "firebase_uid"
	CtxUserDBID    = "user_db_id"
)

// WithUser resolves the caller to a database user row. When a Firebase auth
// client is configured it verifies the bearer token; otherwise it falls back
// to the dev headers so local work does not need credentials.
func WithUser(userRepo *users.Repo, authClient *fbauth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var fuid, email, name string

		if authClient != nil {
			token := extractToken(c)
			if token == "" {
				c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing authorization token"})
				c.Abort()
				return
			}
			decoded, err := authClient.VerifyIDToken(c.Request.Context(), token)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
				c.Abort()
				return
			}
			fuid = decoded.UID
			if e, ok := decoded.Claims["email"].(string); ok {
				email = e
			}
			if n, ok := decoded.Claims["name"].(string); ok {
				name = n
			}
		} else {
			fuid = strings.TrimSpace(c.GetHeader("X-User-Id"))
			if fuid == "" {
				fuid = "demo-user"
			}
			email = c.GetHeader("X-User-Email")
			name = c.GetHeader("X-User-Name")
		}

		uid, err := userRepo.EnsureUser(c.Request.Context(), users.UpsertUser{
			FirebaseUID: fuid,
			Email:       email,
			DisplayName: name,
			Company:     c.GetHeader("X-User-Company"),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "ensure user: " + err.Error()})
			c.Abort()
			return
		}

		c.Set(CtxFirebaseUID, fuid)
		c.Set(CtxUserDBID, uid)
		c.Next()
	}
}

func UserDBID(c *gin.Context) string {
	v := c.GetString(CtxUserDBID)
	if strings.TrimSpace(v) == "" {
		return ""
	}
	return v
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
