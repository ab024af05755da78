package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// FlexID représente un identifiant de document qui peut être soit un
// ObjectID généré par Mongo, soit une chaîne pré-remplie par le seed du
// menu. Les deux formes sont décodées vers leur représentation hexadécimale.
type FlexID string

func (id *FlexID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bson.TypeObjectID:
		oid, _, ok := bsoncore.ReadObjectID(data)
		if !ok {
			return fmt.Errorf("ObjectID illisible")
		}
		*id = FlexID(oid.Hex())
	case bson.TypeString:
		s, _, ok := bsoncore.ReadString(data)
		if !ok {
			return fmt.Errorf("chaîne BSON illisible")
		}
		*id = FlexID(s)
	case bson.TypeNull:
		*id = ""
	default:
		return fmt.Errorf("type BSON inattendu pour un identifiant: %s", t)
	}
	return nil
}

func (id FlexID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.TypeString, bsoncore.AppendString(nil, string(id)), nil
}

type MenuItem struct {
	ID       FlexID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string  `bson:"name" json:"name"`
	Recipe   string  `bson:"recipe" json:"recipe"`
	Image    string  `bson:"image" json:"image"`
	Category string  `bson:"category" json:"category"`
	Price    float64 `bson:"price" json:"price"`
}
