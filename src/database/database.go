package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	FormsCollection     = "forms"
	ResponsesCollection = "responses"
)

// Mongo is a connected client plus the collections the service uses.
type Mongo struct {
	Client    *mongo.Client
	DB        *mongo.Database
	Forms     *mongo.Collection
	Responses *mongo.Collection
}

// ConnectMongoDB connects, pings the primary and makes sure the indexes exist.
func ConnectMongoDB(ctx context.Context, uri, dbName string, log *logrus.Entry) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(dbName)
	m := &Mongo{
		Client:    client,
		DB:        db,
		Forms:     db.Collection(FormsCollection),
		Responses: db.Collection(ResponsesCollection),
	}
	if err := m.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	log.WithField("db", dbName).Info("MongoDB connected successfully")
	return m, nil
}

// EnsureIndexes creates the unique slug index on forms and the lookup
// indexes on responses.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.Forms.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create forms.slug index: %w", err)
	}

	_, err = m.Responses.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "formId", Value: 1}, {Key: "submittedAt", Value: -1}}},
		{Keys: bson.D{{Key: "formSlug", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create responses indexes: %w", err)
	}
	return nil
}

func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
