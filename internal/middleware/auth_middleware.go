package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const authTokenCookieName = "auth_token"

func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization credentials required"})
			c.Abort()
			return
		}

		claims, err := parseClaims(tokenString, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		applyClaims(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller's identity when credentials are
// present but never rejects the request. The public render route uses it to
// decide whether error fragments may carry a visible message.
func OptionalAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := extractToken(c); tokenString != "" {
			if claims, err := parseClaims(tokenString, jwtSecret); err == nil {
				applyClaims(c, claims)
			}
		}
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if authHeader != "" {
		bearerToken := strings.SplitN(authHeader, " ", 2)
		if len(bearerToken) == 2 && strings.EqualFold(bearerToken[0], "Bearer") {
			return strings.TrimSpace(bearerToken[1])
		}
	}

	if cookieToken, err := c.Cookie(authTokenCookieName); err == nil {
		return strings.TrimSpace(cookieToken)
	}
	return ""
}

func parseClaims(tokenString, jwtSecret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	if exp, ok := claims["exp"].(float64); ok {
		if time.Now().Unix() > int64(exp) {
			return nil, fmt.Errorf("token expired")
		}
	}

	return claims, nil
}

func applyClaims(c *gin.Context, claims jwt.MapClaims) {
	if userID, ok := claims["user_id"].(float64); ok {
		c.Set("user_id", uint(userID))
	}
	if email, ok := claims["email"].(string); ok {
		c.Set("email", email)
	}
	role, _ := claims["role"].(string)
	c.Set("role", role)
	c.Set("can_edit", role == "admin" || role == "editor")
}
