package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem est un instantané d'un article du menu placé dans le panier d'un
// utilisateur. Le prix est figé au moment de l'ajout.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	MenuItemID string             `bson:"menuId" json:"menuId"`
	Name       string             `bson:"name" json:"name"`
	Image      string             `bson:"image" json:"image"`
	Price      float64            `bson:"price" json:"price"`
}
