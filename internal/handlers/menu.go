package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"bistro_back_end/internal/cache"
	"bistro_back_end/internal/models"
	"bistro_back_end/internal/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type MenuHandler struct {
	repo  *repository.MenuRepository
	cache *cache.MenuCache
}

func NewMenuHandler(repo *repository.MenuRepository, cache *cache.MenuCache) *MenuHandler {
	return &MenuHandler{repo: repo, cache: cache}
}

// List sert le menu complet, depuis Redis quand le cache est chaud.
func (h *MenuHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if items, ok := h.cache.Get(ctx); ok {
		c.JSON(http.StatusOK, items)
		return
	}

	items, err := h.repo.FindAll(ctx)
	if err != nil {
		log.Println("❌ Erreur lecture menu:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture menu"})
		return
	}

	h.cache.Set(ctx, items)
	c.JSON(http.StatusOK, items)
}

// Get accepte un identifiant sous ses deux formes (chaîne seedée ou
// ObjectID). Un document absent est retourné comme null, pas comme 404.
func (h *MenuHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	item, err := h.repo.FindByFlexID(ctx, c.Param("id"))
	if err != nil {
		log.Println("❌ Erreur lecture article menu:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture article"})
		return
	}
	if item == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *MenuHandler) Create(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := h.repo.Insert(ctx, item)
	if err != nil {
		log.Println("❌ Erreur insertion article menu:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur insertion article"})
		return
	}

	h.cache.Invalidate(ctx)
	c.JSON(http.StatusOK, result)
}

func (h *MenuHandler) Update(c *gin.Context) {
	var input struct {
		Name     *string  `json:"name"`
		Recipe   *string  `json:"recipe"`
		Image    *string  `json:"image"`
		Category *string  `json:"category"`
		Price    *float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	fields := bson.M{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Recipe != nil {
		fields["recipe"] = *input.Recipe
	}
	if input.Image != nil {
		fields["image"] = *input.Image
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aucune donnée à mettre à jour"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := h.repo.UpdateByFlexID(ctx, c.Param("id"), fields)
	if err != nil {
		log.Println("❌ Erreur mise à jour article menu:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour article"})
		return
	}

	h.cache.Invalidate(ctx)
	c.JSON(http.StatusOK, result)
}

func (h *MenuHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := h.repo.DeleteByFlexID(ctx, c.Param("id"))
	if err != nil {
		log.Println("❌ Erreur suppression article menu:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression article"})
		return
	}

	h.cache.Invalidate(ctx)
	c.JSON(http.StatusOK, result)
}
