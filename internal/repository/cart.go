package repository

import (
	"context"

	"bistro_back_end/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{coll: db.Collection("cart")}
}

// FindByEmail filtre strictement sur l'email : c'est le seul filtre
// supporté par l'API panier.
func (r *CartRepository) FindByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartRepository) Insert(ctx context.Context, item models.CartItem) (*mongo.InsertOneResult, error) {
	return r.coll.InsertOne(ctx, item)
}

func (r *CartRepository) DeleteByID(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return r.coll.DeleteOne(ctx, bson.M{"_id": oid})
}

// DeleteByIDs supprime en masse les articles consommés par un paiement.
// Les identifiants non parsables sont ignorés, le résultat Mongo reflète
// ce qui a réellement été supprimé.
func (r *CartRepository) DeleteByIDs(ctx context.Context, ids []string) (*mongo.DeleteResult, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	return r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
}
