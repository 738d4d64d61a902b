// Package mongodb holds the document store connection shared by the
// collection repositories in its subpackages.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/heartmarshall/crmhub-backend/internal/config"
)

// Collection names.
const (
	CollectionPosOrders     = "pos_orders"
	CollectionPos           = "pos"
	CollectionInternalNotes = "internal_notes"
	CollectionActivityLogs  = "activity_logs"
	CollectionLogs          = "logs"
	CollectionTaskPipelines = "tasks_pipelines"
	CollectionTaskStages    = "tasks_stages"
)

// NewClient connects to the document store configured by MongoConfig, pings
// it for fail-fast validation, and returns the ready client.
//
// Embedded documents of untyped fields decode as maps so that free-form
// content (activity log payloads) serializes to plain JSON objects.
func NewClient(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}

// Pinger adapts a client to the health check interface.
type Pinger struct {
	Client *mongo.Client
}

// Ping checks that the primary is reachable.
func (p Pinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx, readpref.Primary())
}
