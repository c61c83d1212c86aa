package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var SessionSecret = []byte("catedra-calendar-secret-2026")

const sessionTTL = 7 * 24 * time.Hour

// IssueToken signs a session token for a selected profile. This is the
// server half of the session store: the client keeps the token and presents
// it to restore its identity on the next load.
func IssueToken(uid, name, role string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  uid,
		"name": name,
		"role": role,
		"exp":  time.Now().Add(sessionTTL).Unix(),
	}).SignedString(SessionSecret)
}

// Session restores the stored identity from the bearer token. Requests with
// no valid token get 401: without a selected profile nothing else is
// reachable.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		token, err := jwt.Parse(auth[7:], func(t *jwt.Token) (interface{}, error) {
			return SessionSecret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		claims := token.Claims.(jwt.MapClaims)
		c.Set("user_id", claims["uid"].(string))
		c.Set("user_name", claims["name"].(string))

		// renew when less than a day remains
		if exp, ok := claims["exp"].(float64); ok {
			if time.Until(time.Unix(int64(exp), 0)) < 24*time.Hour {
				if newToken, err := IssueToken(claims["uid"].(string), claims["name"].(string), asString(claims["role"])); err == nil {
					c.Header("X-New-Token", newToken)
				}
			}
		}

		c.Next()
	}
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
