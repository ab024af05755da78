package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"bistro_back_end/internal/models"
	"bistro_back_end/internal/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartHandler struct {
	repo *repository.CartRepository
}

func NewCartHandler(repo *repository.CartRepository) *CartHandler {
	return &CartHandler{repo: repo}
}

// List ne supporte qu'un seul filtre : le paramètre de requête email.
func (h *CartHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	items, err := h.repo.FindByEmail(ctx, c.Query("email"))
	if err != nil {
		log.Println("❌ Erreur lecture panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CartHandler) Create(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := h.repo.Insert(ctx, item)
	if err != nil {
		log.Println("❌ Erreur ajout au panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ajout au panier"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CartHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := h.repo.DeleteByID(ctx, c.Param("id"))
	if errors.Is(err, primitive.ErrInvalidHex) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID article invalide"})
		return
	}
	if err != nil {
		log.Println("❌ Erreur suppression article panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression article"})
		return
	}
	c.JSON(http.StatusOK, result)
}
