package catalog

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/khayt/stylist-bot/internal/models"
)

// MongoSource reads the storefront's product collection. Documents missing
// sizes or colors decode to empty slices; the engine tolerates both.
type MongoSource struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewMongoSource(ctx context.Context, uri, database, collection string) (*MongoSource, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("error pinging mongodb: %w", err)
	}
	return &MongoSource{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

type productDoc struct {
	ID       int64    `bson:"id"`
	Name     string   `bson:"name"`
	Price    float64  `bson:"price"`
	Category string   `bson:"category"`
	Sizes    []string `bson:"sizes,omitempty"`
	Colors   []string `bson:"colors,omitempty"`
}

// Products returns the collection sorted by id so repeated calls hand the
// composer an identically ordered catalog.
func (s *MongoSource) Products(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying products: %w", err)
	}
	defer cur.Close(ctx)

	var products []models.Product
	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding product: %w", err)
		}
		p := models.Product{
			ID:       doc.ID,
			Name:     doc.Name,
			Price:    doc.Price,
			Category: doc.Category,
			Sizes:    doc.Sizes,
			Colors:   doc.Colors,
		}
		if p.Sizes == nil {
			p.Sizes = []string{}
		}
		if p.Colors == nil {
			p.Colors = []string{}
		}
		products = append(products, p)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}

func (s *MongoSource) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
