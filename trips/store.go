package trips

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"evora/db"
	"evora/models"
	"evora/utils"
)

// ErrNotFound is returned when no trip matches the given identifier.
var ErrNotFound = errors.New("trip not found")

// ListQuery describes one page of the trip index.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
}

// Store is the persistence boundary for trips. The production
// implementation is MongoStore; tests substitute an in-memory one.
type Store interface {
	Insert(ctx context.Context, trip *models.Trip) error
	List(ctx context.Context, q ListQuery) ([]models.TripSummary, int64, error)
	// Get resolves an identifier as a slug first, then as an ObjectID.
	Get(ctx context.Context, identifier string) (*models.Trip, error)
	GetByID(ctx context.Context, id string) (*models.Trip, error)
	Replace(ctx context.Context, trip *models.Trip) error
	Delete(ctx context.Context, id string) error
}

// MongoStore persists trips in the trips collection.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore() *MongoStore {
	return &MongoStore{coll: db.TripsCollection}
}

func (s *MongoStore) Insert(ctx context.Context, trip *models.Trip) error {
	if trip.ID.IsZero() {
		trip.ID = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, trip)
	return err
}

func (s *MongoStore) List(ctx context.Context, q ListQuery) ([]models.TripSummary, int64, error) {
	filter := buildSearchFilter(q.Search)

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetProjection(bson.M{
			"title":      1,
			"duration":   1,
			"coverImage": 1,
			"places":     1,
			"createdAt":  1,
			"slug":       1,
		}).
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))

	summaries, err := utils.FindAndDecode[models.TripSummary](ctx, s.coll, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return summaries, total, nil
}

func (s *MongoStore) Get(ctx context.Context, identifier string) (*models.Trip, error) {
	var trip models.Trip
	err := s.coll.FindOne(ctx, bson.M{"slug": identifier}).Decode(&trip)
	if err == nil {
		return &trip, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	oid, oidErr := primitive.ObjectIDFromHex(identifier)
	if oidErr != nil {
		return nil, ErrNotFound
	}
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&trip)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (s *MongoStore) GetByID(ctx context.Context, id string) (*models.Trip, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var trip models.Trip
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&trip)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (s *MongoStore) Replace(ctx context.Context, trip *models.Trip) error {
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": trip.ID}, trip)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// buildSearchFilter matches the search term case-insensitively against the
// trip title or any place name.
func buildSearchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	regex := bson.M{"$regex": search, "$options": "i"}
	return bson.M{"$or": []bson.M{
		{"title": regex},
		{"places.name": regex},
	}}
}

// store is the package-wide handle used by the HTTP handlers; tests swap
// in an in-memory implementation.
var store Store

func activeStore() Store {
	if store == nil {
		store = NewMongoStore()
	}
	return store
}

const opTimeout = 5 * time.Second
