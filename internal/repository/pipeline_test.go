package repository

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFlexIDFilter(t *testing.T) {
	t.Parallel()

	t.Run("un identifiant hexadécimal matche les deux formes", func(t *testing.T) {
		t.Parallel()

		oid := primitive.NewObjectID()
		filter := flexIDFilter(oid.Hex())

		or, ok := filter["$or"].([]bson.M)
		if !ok {
			t.Fatalf("filtre sans $or: %v", filter)
		}
		if len(or) != 2 {
			t.Fatalf("branches $or = %d, attendu 2", len(or))
		}
		if got := or[0]["_id"]; got != oid.Hex() {
			t.Errorf("branche chaîne = %v, attendu %q", got, oid.Hex())
		}
		if got := or[1]["_id"]; got != oid {
			t.Errorf("branche ObjectID = %v, attendu %v", got, oid)
		}
	})

	t.Run("un identifiant non hexadécimal ne matche que la forme chaîne", func(t *testing.T) {
		t.Parallel()

		filter := flexIDFilter("salade-cesar-01")

		or, ok := filter["$or"].([]bson.M)
		if !ok {
			t.Fatalf("filtre sans $or: %v", filter)
		}
		if len(or) != 1 {
			t.Fatalf("branches $or = %d, attendu 1", len(or))
		}
		if got := or[0]["_id"]; got != "salade-cesar-01" {
			t.Errorf("branche chaîne = %v, attendu %q", got, "salade-cesar-01")
		}
	})
}

func TestOrderStatsPipeline(t *testing.T) {
	t.Parallel()

	pipeline := orderStatsPipeline()

	wantStages := []string{"$unwind", "$lookup", "$unwind", "$group", "$project"}
	if len(pipeline) != len(wantStages) {
		t.Fatalf("étapes = %d, attendu %d", len(pipeline), len(wantStages))
	}
	for i, want := range wantStages {
		if got := pipeline[i][0].Key; got != want {
			t.Errorf("étape %d = %q, attendu %q", i, got, want)
		}
	}

	t.Run("le $lookup joint les articles achetés à la collection menu", func(t *testing.T) {
		t.Parallel()

		lookup, ok := pipeline[1][0].Value.(bson.D)
		if !ok {
			t.Fatalf("$lookup de type inattendu: %T", pipeline[1][0].Value)
		}

		got := lookup.Map()
		if got["from"] != "menu" {
			t.Errorf("from = %v, attendu menu", got["from"])
		}
		if got["localField"] != "menuItemIds" {
			t.Errorf("localField = %v, attendu menuItemIds", got["localField"])
		}
		if got["foreignField"] != "_id" {
			t.Errorf("foreignField = %v, attendu _id", got["foreignField"])
		}
	})

	t.Run("le $group agrège par catégorie avec compteur et revenu", func(t *testing.T) {
		t.Parallel()

		group, ok := pipeline[3][0].Value.(bson.D)
		if !ok {
			t.Fatalf("$group de type inattendu: %T", pipeline[3][0].Value)
		}

		got := group.Map()
		if got["_id"] != "$menuItems.category" {
			t.Errorf("_id = %v, attendu $menuItems.category", got["_id"])
		}

		quantity, ok := got["quantity"].(bson.D)
		if !ok || quantity.Map()["$sum"] != 1 {
			t.Errorf("quantity = %v, attendu {$sum: 1}", got["quantity"])
		}
		revenue, ok := got["revenue"].(bson.D)
		if !ok || revenue.Map()["$sum"] != "$menuItems.price" {
			t.Errorf("revenue = %v, attendu {$sum: $menuItems.price}", got["revenue"])
		}
	})

	t.Run("le $project masque _id et expose la catégorie", func(t *testing.T) {
		t.Parallel()

		project, ok := pipeline[4][0].Value.(bson.D)
		if !ok {
			t.Fatalf("$project de type inattendu: %T", pipeline[4][0].Value)
		}

		got := project.Map()
		if got["_id"] != 0 {
			t.Errorf("_id = %v, attendu 0", got["_id"])
		}
		if got["category"] != "$_id" {
			t.Errorf("category = %v, attendu $_id", got["category"])
		}
	})
}

func TestRevenuePipeline(t *testing.T) {
	t.Parallel()

	pipeline := revenuePipeline()
	if len(pipeline) != 1 {
		t.Fatalf("étapes = %d, attendu 1", len(pipeline))
	}
	if got := pipeline[0][0].Key; got != "$group" {
		t.Fatalf("étape = %q, attendu $group", got)
	}

	group, ok := pipeline[0][0].Value.(bson.D)
	if !ok {
		t.Fatalf("$group de type inattendu: %T", pipeline[0][0].Value)
	}

	got := group.Map()
	if got["_id"] != nil {
		t.Errorf("_id = %v, attendu nil (somme globale)", got["_id"])
	}
	total, ok := got["totalRevenue"].(bson.D)
	if !ok || total.Map()["$sum"] != "$price" {
		t.Errorf("totalRevenue = %v, attendu {$sum: $price}", got["totalRevenue"])
	}
}
