package archive

import (
	"context"
	"errors"
	"net/url"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meron-g/tambola-services/internal/comm"
)

// retention is how long a generated batch stays retrievable by the
// socket gateway before mongo expires it.
const retention = 24 * time.Hour

// BatchDoc is the short-lived archive form of one generated batch.
type BatchDoc struct {
	BatchSN   string            `bson:"batch_sn"`
	UserID    int64             `bson:"user_id"`
	Tickets   []comm.TicketData `bson:"tickets"`
	Total     string            `bson:"total"`
	CreatedAt time.Time         `bson:"created_at"`
	ExpiresAt time.Time         `bson:"expires_at"`
}

type Archive struct {
	batches *mongo.Collection
}

// Connect opens the archive database named by MONGODB_URI and makes
// sure the TTL index on the batches collection exists.
func Connect(ctx context.Context) (*Archive, error) {
	mongoURI := os.Getenv("MONGODB_URI")

	uri, err := url.Parse(mongoURI)
	if err != nil {
		return nil, err
	}
	dbName := strings.TrimPrefix(uri.Path, "/")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	batches := client.Database(dbName).Collection("batches")

	// TTL index: mongo removes a batch once expires_at passes
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"expires_at": 1},
		Options: options.Index().SetExpireAfterSeconds(0),
	}
	if _, err := batches.Indexes().CreateOne(ctx, indexModel); err != nil {
		return nil, err
	}

	return &Archive{batches: batches}, nil
}

// SaveBatch stores a generated batch with its expiry stamped.
func (a *Archive) SaveBatch(ctx context.Context, doc *BatchDoc) error {
	now := time.Now()
	doc.CreatedAt = now
	doc.ExpiresAt = now.Add(retention)

	_, err := a.batches.InsertOne(ctx, doc)
	return err
}

// GetBatch fetches an archived batch, nil when expired or unknown.
func (a *Archive) GetBatch(ctx context.Context, batchSN string) (*BatchDoc, error) {
	doc := &BatchDoc{}
	err := a.batches.FindOne(ctx, bson.M{"batch_sn": batchSN}).Decode(doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}
