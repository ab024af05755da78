package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const CtxRequestID = "request_id"

// RequestID attache un identifiant unique à chaque requête, repris dans le
// header de réponse pour la corrélation des logs. Les réponses en erreur
// serveur sont loguées avec cet identifiant.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(CtxRequestID, id)
		c.Header("X-Request-ID", id)
		c.Next()

		if status := c.Writer.Status(); status >= http.StatusInternalServerError {
			log.Printf("❌ [%s] %s %s → %d", id, c.Request.Method, c.Request.URL.Path, status)
		}
	}
}
