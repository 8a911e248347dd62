package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/emre/event-discovery-go/models"
)

// Mongo reads the event, category and group collections. It implements
// filter.EventSource so the discovery engine never talks to the database
// driver directly.
type Mongo struct {
	client *mongo.Client
	dbName string
}

func NewMongo(client *mongo.Client, dbName string) *Mongo {
	return &Mongo{client: client, dbName: dbName}
}

func (s *Mongo) collection(name string) *mongo.Collection {
	return s.client.Database(s.dbName).Collection(name)
}

// FetchEvents returns the full event collection, newest first so the default
// view is useful even before the engine sorts it.
func (s *Mongo) FetchEvents(ctx context.Context) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}})
	cursor, err := s.collection("events").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}

func (s *Mongo) FetchCategories(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.collection("categories").Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}

func (s *Mongo) FetchGroups(ctx context.Context) ([]models.Group, error) {
	cursor, err := s.collection("groups").Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("fetch groups: %w", err)
	}
	var groups []models.Group
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("decode groups: %w", err)
	}
	return groups, nil
}
