package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"bistro_back_end/internal/repository"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	repo *repository.ReviewRepository
}

func NewReviewHandler(repo *repository.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{repo: repo}
}

func (h *ReviewHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	reviews, err := h.repo.FindAll(ctx)
	if err != nil {
		log.Println("❌ Erreur lecture avis:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture avis"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}
