package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Live répond en texte brut, utilisé comme sonde de vie.
func Live(c *gin.Context) {
	c.String(http.StatusOK, "Bistro Boss est en ligne 🍽️")
}
