package storage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mrmohdriyas/digital-wellness/internal"
)

type MongoStorage struct {
	client   *mongo.Client
	database string
	logger   internal.Logger
}

func NewMongoStorage(uri, database string, logger internal.Logger) (*MongoStorage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Errorf("failed to connect to mongo: %v", err)
		return nil, err
	}
	return &MongoStorage{client: client, database: database, logger: logger}, nil
}

// --- CollectionLister ---
func (m *MongoStorage) ListCollections(ctx context.Context) ([]string, error) {
	names, err := m.client.Database(m.database).ListCollectionNames(ctx, bson.D{})
	if err != nil {
		m.logger.Errorf("failed to list collections of %s: %v", m.database, err)
		return nil, err
	}
	return filterReserved(names), nil
}

// --- DocumentInserter ---
func (m *MongoStorage) InsertDocument(ctx context.Context, collection string, doc *internal.SubmissionDocument) error {
	_, err := m.client.Database(m.database).Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		m.logger.Errorf("failed to insert document into %s: %v", collection, err)
		return err
	}
	return nil
}

func (m *MongoStorage) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// --- Compile-time assertions ---
var _ CollectionLister = (*MongoStorage)(nil)
var _ DocumentInserter = (*MongoStorage)(nil)
