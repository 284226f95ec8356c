package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// findAll decodes every document of coll into results, which must point to a slice.
func findAll(ctx context.Context, coll *mongo.Collection, results interface{}) error {
	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return MapError(err)
	}

	// All closes the cursor.
	if err := cursor.All(ctx, results); err != nil {
		return MapError(err)
	}

	return nil
}

// deleteByID removes the document with id, returning notFound when nothing matched.
func deleteByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, notFound error) error {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return MapError(err)
	}
	if res.DeletedCount == 0 {
		return notFound
	}

	return nil
}

// replaceByID overwrites the document with id, returning notFound when nothing matched.
func replaceByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, doc interface{}, notFound error) error {
	res, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return MapError(err)
	}
	if res.MatchedCount == 0 {
		return notFound
	}

	return nil
}

func insertedID(res *mongo.InsertOneResult) primitive.ObjectID {
	if res == nil {
		return primitive.NilObjectID
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		return id
	}
	return primitive.NilObjectID
}
