package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"contactdesk/pkg/config"
	tokenstore "contactdesk/pkg/token"
)

const (
	// SessionCookie carries the signed admin session token.
	SessionCookie = "cd_session"

	ContextSessionIDKey = "current_session_id"

	sessionTTL = 24 * time.Hour
)

// IssueSession signs an admin session token and sets it as an HttpOnly
// cookie. The session has two states only: this cookie present and valid
// means admin, anything else means anonymous.
func IssueSession(c *gin.Context) error {
	sid := uuid.NewString()
	claims := jwt.MapClaims{
		"admin": true,
		"jti":   sid,
		"exp":   time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.SecretKey))
	if err != nil {
		return err
	}
	c.SetCookie(SessionCookie, signed, int(sessionTTL.Seconds()), "/", "", false, true)
	return nil
}

// ClearSession revokes the current session id, if any, and expires the
// cookie.
func ClearSession(c *gin.Context) {
	if sid, ok := sessionID(c); ok {
		tokenstore.Revoke(sid)
	}
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}

// HasAdminSession reports whether the request carries a valid, unrevoked
// admin session.
func HasAdminSession(c *gin.Context) bool {
	_, ok := sessionID(c)
	return ok
}

// AdminPage gates HTML routes; anonymous requests are sent to the login
// form.
func AdminPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(ContextSessionIDKey, sid)
		c.Next()
	}
}

// AdminAPI gates data routes; anonymous requests get a structured 401, not a
// redirect.
func AdminAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "admin session required"})
			return
		}
		c.Set(ContextSessionIDKey, sid)
		c.Next()
	}
}

func sessionID(c *gin.Context) (string, bool) {
	raw, err := c.Cookie(SessionCookie)
	if err != nil || raw == "" {
		return "", false
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// only accept HMAC signing
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return []byte(config.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	if isAdmin, _ := claims["admin"].(bool); !isAdmin {
		return "", false
	}
	sid, _ := claims["jti"].(string)
	if sid == "" || tokenstore.IsRevoked(sid) {
		return "", false
	}
	return sid, true
}
