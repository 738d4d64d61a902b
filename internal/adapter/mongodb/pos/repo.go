// Package pos implements POS terminal lookups on the document store.
package pos

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/heartmarshall/crmhub-backend/internal/adapter/mongodb"
	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

// Repo reads POS terminal configurations.
type Repo struct {
	coll *mongo.Collection
}

// New creates a new POS repository.
func New(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection(mongodb.CollectionPos)}
}

// GetByID returns a terminal by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Pos, error) {
	return r.findOne(ctx, bson.M{"_id": id}, id)
}

// GetByToken returns a terminal by its token.
func (r *Repo) GetByToken(ctx context.Context, token string) (*domain.Pos, error) {
	return r.findOne(ctx, bson.M{"token": token}, token)
}

// GetByBrand returns a terminal whose brand scope includes brandID.
func (r *Repo) GetByBrand(ctx context.Context, brandID string) (*domain.Pos, error) {
	return r.findOne(ctx, bson.M{"scopeBrandIds": bson.M{"$in": bson.A{brandID}}}, "of brand "+brandID)
}

// FindByTokens returns the terminals with the given tokens. Unknown tokens
// are skipped.
func (r *Repo) FindByTokens(ctx context.Context, tokens []string) ([]domain.Pos, error) {
	if len(tokens) == 0 {
		return []domain.Pos{}, nil
	}

	cur, err := r.coll.Find(ctx, bson.M{"token": bson.M{"$in": tokens}})
	if err != nil {
		return nil, fmt.Errorf("find pos by tokens: %w", err)
	}

	out := make([]domain.Pos, 0, len(tokens))
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode pos: %w", err)
	}
	return out, nil
}

func (r *Repo) findOne(ctx context.Context, filter bson.M, ref string) (*domain.Pos, error) {
	var p domain.Pos
	if err := r.coll.FindOne(ctx, filter).Decode(&p); err != nil {
		return nil, mongodb.MapError(err, "pos", ref)
	}
	return &p, nil
}
