package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"bistro_back_end/internal/models"
	"bistro_back_end/internal/token"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserStore est le sous-ensemble du repository utilisateurs consommé par
// le handler, satisfait par *repository.UserRepository.
type UserStore interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user models.User) (*mongo.InsertOneResult, error)
	DeleteByID(ctx context.Context, id string) (*mongo.DeleteResult, error)
	PromoteToAdmin(ctx context.Context, id string) (*mongo.UpdateResult, error)
}

type UserHandler struct {
	repo   UserStore
	tokens *token.Service
}

func NewUserHandler(repo UserStore, tokens *token.Service) *UserHandler {
	return &UserHandler{repo: repo, tokens: tokens}
}

// IssueToken signe un token pour le claim fourni dans le body, sans
// vérification de son contenu (voir token.Service.Issue).
func (h *UserHandler) IssueToken(c *gin.Context) {
	var claim map[string]any
	if err := c.ShouldBindJSON(&claim); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	tok, err := h.tokens.Issue(claim)
	if err != nil {
		log.Println("❌ Erreur signature token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur signature token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tok})
}

func (h *UserHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users, err := h.repo.FindAll(ctx)
	if err != nil {
		log.Println("❌ Erreur lecture utilisateurs:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture utilisateurs"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdmin répond {admin: bool} pour l'email du chemin. La garde
// RequireSelf a déjà vérifié que l'appelant demande son propre statut.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := h.repo.FindByEmail(ctx, c.Param("email"))
	if err != nil {
		log.Println("❌ Erreur lookup utilisateur:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lookup utilisateur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": user.IsAdmin()})
}

// Create est idempotent par email : re-poster un email existant retourne
// la sentinelle "User already exists" au lieu d'insérer un doublon.
func (h *UserHandler) Create(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := h.repo.FindByEmail(ctx, user.Email)
	if err != nil {
		log.Println("❌ Erreur lookup utilisateur:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lookup utilisateur"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists"})
		return
	}

	result, err := h.repo.Insert(ctx, user)
	if err != nil {
		log.Println("❌ Erreur insertion utilisateur:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur insertion utilisateur"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *UserHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := h.repo.DeleteByID(ctx, c.Param("id"))
	if errors.Is(err, primitive.ErrInvalidHex) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID utilisateur invalide"})
		return
	}
	if err != nil {
		log.Println("❌ Erreur suppression utilisateur:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression utilisateur"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Promote passe le rôle de l'utilisateur à admin. Seule mutation de rôle
// exposée par l'API.
func (h *UserHandler) Promote(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := h.repo.PromoteToAdmin(ctx, c.Param("id"))
	if errors.Is(err, primitive.ErrInvalidHex) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID utilisateur invalide"})
		return
	}
	if err != nil {
		log.Println("❌ Erreur promotion utilisateur:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur promotion utilisateur"})
		return
	}
	c.JSON(http.StatusOK, result)
}
