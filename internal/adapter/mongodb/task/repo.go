// Package task implements task board lookups on the document store.
package task

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heartmarshall/crmhub-backend/internal/adapter/mongodb"
)

// Repo reads task pipelines and stages.
type Repo struct {
	pipelines *mongo.Collection
	stages    *mongo.Collection
}

// New creates a new task repository.
func New(db *mongo.Database) *Repo {
	return &Repo{
		pipelines: db.Collection(mongodb.CollectionTaskPipelines),
		stages:    db.Collection(mongodb.CollectionTaskStages),
	}
}

// PipelineIDsByBoard returns the pipelines of a board.
func (r *Repo) PipelineIDsByBoard(ctx context.Context, boardID string) ([]string, error) {
	ids, err := r.ids(ctx, r.pipelines, bson.M{"boardId": boardID})
	if err != nil {
		return nil, fmt.Errorf("pipelines of board %s: %w", boardID, err)
	}
	return ids, nil
}

// StageIDsByPipelines returns the stages of the given pipelines.
func (r *Repo) StageIDsByPipelines(ctx context.Context, pipelineIDs []string) ([]string, error) {
	if len(pipelineIDs) == 0 {
		return []string{}, nil
	}
	ids, err := r.ids(ctx, r.stages, bson.M{"pipelineId": bson.M{"$in": pipelineIDs}})
	if err != nil {
		return nil, fmt.Errorf("stages of pipelines: %w", err)
	}
	return ids, nil
}

func (r *Repo) ids(ctx context.Context, coll *mongo.Collection, filter bson.M) ([]string, error) {
	cur, err := coll.Find(ctx, filter, options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetSort(bson.D{{Key: "order", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var docs []struct {
		ID string `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}
