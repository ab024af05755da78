package handlers

import (
	"context"
	"log"
	"math"
	"net/http"
	"time"

	"bistro_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentStore est le sous-ensemble du repository paiements consommé par
// le handler, satisfait par *repository.PaymentRepository.
type PaymentStore interface {
	FindByEmail(ctx context.Context, email string) ([]models.Payment, error)
	Insert(ctx context.Context, payment models.Payment) (*mongo.InsertOneResult, error)
}

// CartBulkDeleter est la seule opération panier dont la phase de nettoyage
// a besoin, satisfaite par *repository.CartRepository.
type CartBulkDeleter interface {
	DeleteByIDs(ctx context.Context, ids []string) (*mongo.DeleteResult, error)
}

type PaymentHandler struct {
	payments PaymentStore
	carts    CartBulkDeleter
}

func NewPaymentHandler(payments PaymentStore, carts CartBulkDeleter) *PaymentHandler {
	return &PaymentHandler{payments: payments, carts: carts}
}

// ListByEmail retourne l'historique de paiements de l'email du chemin. La
// garde RequireSelf a déjà vérifié que l'appelant consulte le sien.
func (h *PaymentHandler) ListByEmail(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	payments, err := h.payments.FindByEmail(ctx, c.Param("email"))
	if err != nil {
		log.Println("❌ Erreur lecture paiements:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture paiements"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// CreateIntent crée un PaymentIntent Stripe pour le montant demandé et
// renvoie le client secret au frontend.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Montant invalide"})
		return
	}

	amount := int64(math.Round(req.Price * 100))

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String("usd"),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		log.Println("❌ Erreur Stripe:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Printf("💳 PaymentIntent créé : %s (%.2f)", intent.ID, req.Price)
	c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
}

// Create est une opération composée en deux phases : insertion du paiement
// puis suppression en masse des articles du panier consommés. Les deux
// étapes ne sont pas transactionnelles — si la suppression échoue après
// une insertion réussie, la réponse expose les deux résultats et c'est à
// l'appelant de réconcilier.
func (h *PaymentHandler) Create(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	paymentResult, err := h.payments.Insert(ctx, payment)
	if err != nil {
		log.Println("❌ Erreur insertion paiement:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur insertion paiement"})
		return
	}

	deleteResult, err := h.carts.DeleteByIDs(ctx, payment.CartIDs)
	if err != nil {
		// Le paiement est déjà persisté : on renvoie son résultat pour que
		// l'appelant détecte l'échec partiel.
		log.Println("❌ Erreur nettoyage panier après paiement:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"paymentResult": paymentResult,
			"error":         "Paiement enregistré mais nettoyage du panier échoué",
		})
		return
	}

	log.Printf("✅ Paiement enregistré pour %s (%d articles retirés du panier)",
		payment.Email, deleteResult.DeletedCount)

	c.JSON(http.StatusOK, gin.H{
		"paymentResult": paymentResult,
		"deleteResult":  deleteResult,
	})
}
