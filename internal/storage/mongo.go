package storage

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	ProductsCollection = "products"
	OrdersCollection   = "orders"
)

// NewMongoDB connects to the document store, verifies the connection and
// ensures the unique index on the client-facing `id` field of both
// collections. That index is the sole backstop against duplicate ids; its
// violation surfaces to clients as a ValidationError.
func NewMongoDB(ctx context.Context, uri string, dbName string) (*mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, (10 * time.Second))
	defer cancel()

	client, err := mongo.Connect(
		connectCtx,
		options.Client().ApplyURI(uri),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongodb")
	}

	if err = client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, errors.Wrap(err, "failed to ping mongodb")
	}

	db := client.Database(dbName)

	for _, collection := range []string{ProductsCollection, OrdersCollection} {
		_, err = db.Collection(collection).Indexes().CreateOne(
			connectCtx,
			mongo.IndexModel{
				Keys:    bson.D{{Key: "id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		)
		if err != nil {
			return nil, errors.Wrapf(
				err,
				"failed to ensure unique id index on %s",
				collection,
			)
		}
	}

	return db, nil
}
