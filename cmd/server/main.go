package main

import (
	"context"
	"log"
	"os"
	"time"

	"bistro_back_end/internal/cache"
	"bistro_back_end/internal/config"
	"bistro_back_end/internal/database"
	"bistro_back_end/internal/handlers"
	"bistro_back_end/internal/middleware"
	"bistro_back_end/internal/repository"
	"bistro_back_end/internal/routes"
	"bistro_back_end/internal/token"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
)

func main() {
	config.Load()

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Fatal("❌ Impossible d'initialiser Stripe : clé manquante")
	}
	log.Println("✅ Stripe initialisé")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("❌ JWT_SECRET manquant dans .env")
	}

	db := database.Connect()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		db.Close(ctx)
	}()

	// Repositories construits une fois et injectés partout, pas de handle
	// global de collection.
	users := repository.NewUserRepository(db.Mongo)
	menu := repository.NewMenuRepository(db.Mongo)
	reviews := repository.NewReviewRepository(db.Mongo)
	carts := repository.NewCartRepository(db.Mongo)
	payments := repository.NewPaymentRepository(db.Mongo)

	tokens := token.NewService(secret)
	menuCache := cache.NewMenuCache(db.Redis)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.Register(r, routes.Deps{
		Tokens:  tokens,
		Users:   users,
		Redis:   db.Redis,
		Menu:    handlers.NewMenuHandler(menu, menuCache),
		User:    handlers.NewUserHandler(users, tokens),
		Review:  handlers.NewReviewHandler(reviews),
		Cart:    handlers.NewCartHandler(carts),
		Payment: handlers.NewPaymentHandler(payments, carts),
		Stats:   handlers.NewStatsHandler(users, menu, payments),
	})

	port := config.Getenv("PORT", "5000")
	log.Println("🚀 Serveur Bistro lancé sur le port", port)
	// log.Fatal court-circuiterait le defer de fermeture des connexions.
	if err := r.Run(":" + port); err != nil {
		log.Println("❌ Erreur serveur:", err)
	}
}
