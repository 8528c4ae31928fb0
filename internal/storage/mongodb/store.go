package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/bistroboss/bistro-be/internal/storage"
)

// Ensure Store satisfies every store interface at compile time.
var (
	_ storage.UserStore    = (*Store)(nil)
	_ storage.MenuStore    = (*Store)(nil)
	_ storage.ReviewStore  = (*Store)(nil)
	_ storage.CartStore    = (*Store)(nil)
	_ storage.PaymentStore = (*Store)(nil)
)

// Store provides MongoDB-backed persistence for every collection. One Store
// (and its underlying client) is created at startup and shared by all
// requests; per-document operations are atomic at the server, multi-document
// sequences are not.
type Store struct {
	client   *mongo.Client
	users    *mongo.Collection
	menu     *mongo.Collection
	reviews  *mongo.Collection
	carts    *mongo.Collection
	payments *mongo.Collection
}

// NewStore connects to MongoDB, verifies the connection with a ping, and
// binds the collections.
func NewStore(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(database)
	return &Store{
		client:   client,
		users:    db.Collection("users"),
		menu:     db.Collection("menu"),
		reviews:  db.Collection("reviews"),
		carts:    db.Collection("carts"),
		payments: db.Collection("payments"),
	}, nil
}

// Close releases the client; invoked once on shutdown.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: %q", storage.ErrInvalidID, id)
	}
	return oid, nil
}

func parseIDs(ids []string) ([]bson.ObjectID, error) {
	oids := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := parseID(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}
	return oids, nil
}

func insertedHex(res *mongo.InsertOneResult) string {
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprintf("%v", res.InsertedID)
}
