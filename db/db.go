package db

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"evora/globals"
)

var (
	TripsCollection *mongo.Collection
	UserCollection  *mongo.Collection
	Client          *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found; using system environment")
	}

	uri := globals.Getenv("MONGODB_URI", "mongodb://localhost:27017")

	clientOptions := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(30 * time.Second).
		SetMaxPoolSize(10)

	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	database := Client.Database(globals.Getenv("MONGODB_DB", "evoradb"))
	TripsCollection = database.Collection("trips")
	UserCollection = database.Collection("users")
}

// EnsureIndexes creates the unique slug index the trip lifecycle relies on.
// Sparse so documents created before a slug is assigned do not collide.
func EnsureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := TripsCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true).SetSparse(true),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to create slug index")
	}
}

// Ping reports whether the MongoDB deployment is reachable.
func Ping(ctx context.Context) bool {
	if Client == nil {
		return false
	}
	return Client.Ping(ctx, nil) == nil
}
