package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Databases regroupe les handles longue durée construits au démarrage puis
// injectés dans les repositories. Les deux clients sont sûrs pour un usage
// concurrent, aucun verrou supplémentaire n'est nécessaire.
type Databases struct {
	Client *mongo.Client
	Mongo  *mongo.Database
	Redis  *redis.Client
}

// Connect initialise MongoDB et Redis. Toute erreur à ce stade est fatale,
// le serveur ne démarre pas à moitié connecté.
func Connect() *Databases {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoClient, mongoDB := connectMongo(ctx)
	redisClient := connectRedis(ctx)

	log.Println("✅ Toutes les bases de données sont connectées")

	return &Databases{
		Client: mongoClient,
		Mongo:  mongoDB,
		Redis:  redisClient,
	}
}

func connectMongo(ctx context.Context) (*mongo.Client, *mongo.Database) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		log.Fatal("❌ MONGO_URI manquant dans .env")
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		log.Fatal("❌ Erreur connexion MongoDB:", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("❌ MongoDB injoignable:", err)
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "bisstroDB"
	}

	log.Println("✅ Connecté à MongoDB, base", dbName)
	return client, client.Database(dbName)
}

func connectRedis(ctx context.Context) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_HOST"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Erreur connexion Redis:", err)
	}
	log.Println("✅ Connecté à Redis")

	return client
}

// Close ferme proprement la connexion MongoDB. Redis n'a pas besoin de
// fermeture explicite au shutdown du process.
func (d *Databases) Close(ctx context.Context) {
	if err := d.Client.Disconnect(ctx); err != nil {
		log.Println("⚠️ Erreur fermeture MongoDB:", err)
	}
}
