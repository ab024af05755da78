package repository

import (
	"context"
	"errors"

	"bistro_back_end/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MenuRepository struct {
	coll *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{coll: db.Collection("menu")}
}

// flexIDFilter accepte les deux formes d'identifiant du menu : les
// documents seedés portent un _id chaîne, ceux créés via l'API un ObjectID.
func flexIDFilter(id string) bson.M {
	or := []bson.M{{"_id": id}}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		or = append(or, bson.M{"_id": oid})
	}
	return bson.M{"$or": or}
}

func (r *MenuRepository) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByFlexID retourne (nil, nil) quand le document est absent.
func (r *MenuRepository) FindByFlexID(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.coll.FindOne(ctx, flexIDFilter(id)).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Insert(ctx context.Context, item models.MenuItem) (*mongo.InsertOneResult, error) {
	return r.coll.InsertOne(ctx, item)
}

func (r *MenuRepository) UpdateByFlexID(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error) {
	return r.coll.UpdateOne(ctx, flexIDFilter(id), bson.M{"$set": fields})
}

func (r *MenuRepository) DeleteByFlexID(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	return r.coll.DeleteOne(ctx, flexIDFilter(id))
}

func (r *MenuRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.EstimatedDocumentCount(ctx)
}
