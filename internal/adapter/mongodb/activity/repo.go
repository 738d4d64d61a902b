// Package activity implements reads of internal notes, activity logs and
// generic audit logs on the document store.
package activity

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heartmarshall/crmhub-backend/internal/adapter/mongodb"
	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

var newestFirst = bson.D{{Key: "createdAt", Value: -1}}

// Repo reads the activity-related collections.
type Repo struct {
	notes        *mongo.Collection
	activityLogs *mongo.Collection
	logs         *mongo.Collection
}

// New creates a new activity repository.
func New(db *mongo.Database) *Repo {
	return &Repo{
		notes:        db.Collection(mongodb.CollectionInternalNotes),
		activityLogs: db.Collection(mongodb.CollectionActivityLogs),
		logs:         db.Collection(mongodb.CollectionLogs),
	}
}

// NotesByContent returns the internal notes of a content item, newest first.
func (r *Repo) NotesByContent(ctx context.Context, contentID string) ([]domain.InternalNote, error) {
	cur, err := r.notes.Find(ctx, bson.M{"contentTypeId": contentID}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, fmt.Errorf("find internal notes of %s: %w", contentID, err)
	}

	notes := make([]domain.InternalNote, 0)
	if err := cur.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("decode internal notes: %w", err)
	}
	return notes, nil
}

// ActivityLogsByContent returns the activity logs of a content item in
// storage order.
func (r *Repo) ActivityLogsByContent(ctx context.Context, contentID string) ([]domain.ActivityLog, error) {
	cur, err := r.activityLogs.Find(ctx, bson.M{"contentId": contentID})
	if err != nil {
		return nil, fmt.Errorf("find activity logs of %s: %w", contentID, err)
	}

	logs := make([]domain.ActivityLog, 0)
	if err := cur.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("decode activity logs: %w", err)
	}
	return logs, nil
}

// FindActivityLogs returns one page of activity logs, newest first, and the
// total number of matches.
func (r *Repo) FindActivityLogs(ctx context.Context, q domain.ActivityLogQuery) ([]domain.ActivityLog, int64, error) {
	filter := bson.M{
		"contentType": q.ContentType,
		"contentId":   bson.M{"$in": nonNil(q.ContentIDs)},
		"action":      bson.M{"$in": nonNil(q.Actions)},
	}

	logs := make([]domain.ActivityLog, 0)
	total, err := r.page(ctx, r.activityLogs, filter, q.Page, &logs)
	if err != nil {
		return nil, 0, fmt.Errorf("activity logs by action: %w", err)
	}
	return logs, total, nil
}

// FindLogs returns one page of audit logs, newest first, and the total
// number of matches.
func (r *Repo) FindLogs(ctx context.Context, q domain.LogQuery) ([]domain.Log, int64, error) {
	filter := bson.M{"action": q.Action, "type": q.Type}

	logs := make([]domain.Log, 0)
	total, err := r.page(ctx, r.logs, filter, q.Page, &logs)
	if err != nil {
		return nil, 0, fmt.Errorf("audit logs by action: %w", err)
	}
	return logs, total, nil
}

func (r *Repo) page(ctx context.Context, coll *mongo.Collection, filter bson.M, page domain.Page, out any) (int64, error) {
	opts := options.Find().
		SetSort(newestFirst).
		SetSkip(int64(page.Skip())).
		SetLimit(int64(page.PerPage))

	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return 0, err
	}
	if err := cur.All(ctx, out); err != nil {
		return 0, err
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
