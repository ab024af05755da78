package repository

import (
	"context"

	"bistro_back_end/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection("payments")}
}

// CategoryStat est une ligne du rapport de ventes par catégorie. L'ordre
// des lignes n'est pas garanti.
type CategoryStat struct {
	Category string  `bson:"category" json:"category"`
	Quantity int64   `bson:"quantity" json:"quantity"`
	Revenue  float64 `bson:"revenue" json:"revenue"`
}

func (r *PaymentRepository) FindByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) Insert(ctx context.Context, payment models.Payment) (*mongo.InsertOneResult, error) {
	return r.coll.InsertOne(ctx, payment)
}

func (r *PaymentRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.EstimatedDocumentCount(ctx)
}

// revenuePipeline additionne le montant de tous les paiements.
func revenuePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
}

// TotalRevenue retourne 0 quand aucun paiement n'existe.
func (r *PaymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	cursor, err := r.coll.Aggregate(ctx, revenuePipeline())
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalRevenue, nil
}

// orderStatsPipeline éclate la liste des articles achetés de chaque
// paiement, la joint au menu pour résoudre catégorie et prix, puis groupe
// par catégorie. Les articles sans correspondance dans le menu sont
// écartés par le $unwind qui suit le $lookup (sémantique inner join).
func orderStatsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$menuItemIds"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "menu"},
			{Key: "localField", Value: "menuItemIds"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "menuItems"},
		}}},
		{{Key: "$unwind", Value: "$menuItems"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItems.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$menuItems.price"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "quantity", Value: "$quantity"},
			{Key: "revenue", Value: "$revenue"},
		}}},
	}
}

func (r *PaymentRepository) OrderStats(ctx context.Context) ([]CategoryStat, error) {
	cursor, err := r.coll.Aggregate(ctx, orderStatsPipeline())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stats := []CategoryStat{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
