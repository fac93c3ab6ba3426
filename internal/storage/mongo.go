package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCollection is the collection holding one document per key.
const MongoCollection = "documents"

type mongoDocument struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStore implements Store on a MongoDB collection.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
	logger     zerolog.Logger
}

// ConnectMongo connects to uri and returns a store on the named database.
func ConnectMongo(ctx context.Context, uri, database string, logger zerolog.Logger) (*MongoStore, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(MongoCollection),
		logger:     logger.With().Str("store", "mongo").Logger(),
	}, nil
}

// Get retrieves the document stored under key.
func (s *MongoStore) Get(ctx context.Context, key Key) ([]byte, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}

	var doc mongoDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": string(key)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		s.logger.Error().Err(err).Str("key", string(key)).Msg("failed to find document")
		return nil, false, fmt.Errorf("failed to find document: %w", err)
	}

	return doc.Value, true, nil
}

// Set replaces the document stored under key with an upsert.
func (s *MongoStore) Set(ctx context.Context, key Key, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}

	filter := bson.M{"_id": string(key)}
	update := bson.M{"$set": bson.M{"value": value, "updated_at": time.Now().UTC()}}
	opts := options.Update().SetUpsert(true)

	if _, err := s.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		s.logger.Error().Err(err).Str("key", string(key)).Msg("failed to upsert document")
		return fmt.Errorf("failed to upsert document: %w", err)
	}

	return nil
}

// Close disconnects the client.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
