package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/config"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/identity"
)

const ContextPrincipal = "principal"

// AuthMiddleware verifies the bearer token and hangs the resulting
// Principal on the request context. Everything past this point trusts the
// claims; the booking core never re-verifies identity.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID, ok1 := claims["sub"].(float64)
		role, ok2 := claims["role"].(string)
		if !ok1 || !ok2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		// barbershopId is absent for clients
		var barbershopID uint
		if v, ok := claims["barbershopId"].(float64); ok {
			barbershopID = uint(v)
		}

		c.Set(ContextPrincipal, identity.Principal{
			UserID:       uint(userID),
			Role:         role,
			BarbershopID: barbershopID,
		})

		c.Next()
	}
}

// Principal returns the authenticated principal set by AuthMiddleware.
func Principal(c *gin.Context) identity.Principal {
	return c.MustGet(ContextPrincipal).(identity.Principal)
}
