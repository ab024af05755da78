package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"bistro_back_end/internal/repository"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	users    *repository.UserRepository
	menu     *repository.MenuRepository
	payments *repository.PaymentRepository
}

func NewStatsHandler(users *repository.UserRepository, menu *repository.MenuRepository, payments *repository.PaymentRepository) *StatsHandler {
	return &StatsHandler{users: users, menu: menu, payments: payments}
}

// AdminStats retourne les compteurs du dashboard admin. Les comptages sont
// approximatifs (EstimatedDocumentCount), ce qui suffit pour un dashboard.
func (h *StatsHandler) AdminStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users, err := h.users.Count(ctx)
	if err != nil {
		log.Println("❌ Erreur comptage utilisateurs:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture statistiques"})
		return
	}

	products, err := h.menu.Count(ctx)
	if err != nil {
		log.Println("❌ Erreur comptage menu:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture statistiques"})
		return
	}

	orders, err := h.payments.Count(ctx)
	if err != nil {
		log.Println("❌ Erreur comptage paiements:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture statistiques"})
		return
	}

	revenue, err := h.payments.TotalRevenue(ctx)
	if err != nil {
		log.Println("❌ Erreur calcul revenu:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture statistiques"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":    users,
		"products": products,
		"orders":   orders,
		"revenue":  revenue,
	})
}

// OrderStats sert les ventes agrégées par catégorie. L'ordre des lignes
// n'est pas garanti.
func (h *StatsHandler) OrderStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats, err := h.payments.OrderStats(ctx)
	if err != nil {
		log.Println("❌ Erreur agrégation commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture statistiques"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
