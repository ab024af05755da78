package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"bistro_back_end/internal/models"
	"bistro_back_end/internal/token"

	"github.com/gin-gonic/gin"
)

// Clés du contexte Gin posées par RequireAuth.
const (
	CtxEmail  = "email"
	CtxClaims = "claims"
)

// UserFinder est le sous-ensemble du repository utilisateurs dont la garde
// admin a besoin. Un utilisateur introuvable est retourné comme (nil, nil).
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// RequireAuth extrait le bearer token du header Authorization, le vérifie
// et pose le claim décodé dans le contexte. Tout échec court-circuite en 401.
func RequireAuth(svc *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			c.Abort()
			return
		}

		claims, err := svc.Verify(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			c.Abort()
			return
		}

		email, _ := claims["email"].(string)
		c.Set(CtxEmail, email)
		c.Set(CtxClaims, claims)
		c.Next()
	}
}

// RequireAdmin doit s'exécuter après RequireAuth. Le rôle n'est jamais lu
// depuis le token : on recharge l'utilisateur en base et un utilisateur
// absent est traité explicitement comme non-admin.
func RequireAdmin(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(CtxEmail)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		user, err := users.FindByEmail(ctx, email)
		if err != nil {
			log.Printf("❌ Erreur lookup admin pour %s: %v", email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSelf refuse l'accès quand l'email du claim ne correspond pas à
// l'email passé dans le chemin. Sert aux vérifications self-service.
func RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxEmail) != c.Param(param) {
			c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			c.Abort()
			return
		}
		c.Next()
	}
}
