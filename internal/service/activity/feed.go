package activity

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
	"github.com/heartmarshall/crmhub-backend/internal/service/validation"
)

// ListInput selects the feed of one content item. ActivityType narrows the
// feed to one "<service>:<subtype>" source; empty or "activity" selects all.
type ListInput struct {
	ContentType  string `json:"contentType"`
	ContentID    string `json:"contentId" validate:"required"`
	ActivityType string `json:"activityType"`
}

func (in ListInput) scoped() bool {
	return in.ActivityType != "" && in.ActivityType != domain.ActivityTypeAll
}

// List returns the activity feed of a content item.
//
// A scoped feed of core internal notes is read locally. Any other scoped
// feed is returned as its service's collector produced it; services missing
// from the registry yield an empty feed. The full feed
// merges notes, local activity logs and every collector advertised in the
// registry, newest first.
func (s *Service) List(ctx context.Context, in ListInput) ([]domain.ActivityEntry, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	if in.scoped() {
		return s.listScoped(ctx, in)
	}
	return s.listAll(ctx, in)
}

func (s *Service) listScoped(ctx context.Context, in ListInput) ([]domain.ActivityEntry, error) {
	ref := domain.ContentTypeRef(in.ActivityType)
	service := ref.Service()

	if service == domain.CoreServiceName && ref.Name() == domain.InternalNoteSubtype {
		notes, err := s.store.NotesByContent(ctx, in.ContentID)
		if err != nil {
			return nil, fmt.Errorf("activity %s: %w", in.ActivityType, err)
		}
		entries := convert(notes, fromNote)
		sortNewestFirst(entries)
		return entries, nil
	}

	known, err := s.registered(ctx, service)
	if err != nil {
		return nil, fmt.Errorf("activity %s: %w", in.ActivityType, err)
	}
	if !known {
		s.log.DebugContext(ctx, "activity of an unregistered service",
			slog.String("activity_type", in.ActivityType),
		)
		return []domain.ActivityEntry{}, nil
	}

	entries, err := s.collector.CollectItems(ctx, service, domain.CollectItemsRequest{
		ContentID:    in.ContentID,
		ContentType:  in.ContentType,
		ActivityType: in.ActivityType,
	})
	if err != nil {
		return nil, fmt.Errorf("activity %s: %w", in.ActivityType, err)
	}
	if entries == nil {
		entries = []domain.ActivityEntry{}
	}
	return entries, nil
}

func (s *Service) listAll(ctx context.Context, in ListInput) ([]domain.ActivityEntry, error) {
	var (
		notes     []domain.InternalNote
		logs      []domain.ActivityLog
		providers []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		notes, err = s.store.NotesByContent(gctx, in.ContentID)
		return err
	})
	g.Go(func() (err error) {
		logs, err = s.store.ActivityLogsByContent(gctx, in.ContentID)
		return err
	})
	g.Go(func() error {
		services, err := s.registry.ListServices(gctx)
		if err != nil {
			return fmt.Errorf("list services: %w", err)
		}
		for _, svc := range services {
			if svc.ProvidesActivityLog() {
				providers = append(providers, svc.Name)
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("activity feed: %w", err)
	}

	remote, err := s.collectRemote(ctx, in, providers, logs)
	if err != nil {
		return nil, fmt.Errorf("activity feed: %w", err)
	}

	entries := make([]domain.ActivityEntry, 0, len(notes)+len(logs)+len(remote))
	entries = append(entries, remote...)
	entries = append(entries, convert(notes, fromNote)...)
	entries = append(entries, convert(logs, fromActivityLog)...)
	sortNewestFirst(entries)

	s.log.DebugContext(ctx, "activity feed assembled",
		slog.String("content_id", in.ContentID),
		slog.Int("collectors", len(providers)),
		slog.Int("entries", len(entries)),
	)
	return entries, nil
}

// collectRemote calls every provider's collector concurrently and
// concatenates the results in provider order. Any failure fails the feed.
func (s *Service) collectRemote(
	ctx context.Context,
	in ListInput,
	providers []string,
	logs []domain.ActivityLog,
) ([]domain.ActivityEntry, error) {
	results := make([][]domain.ActivityEntry, len(providers))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range providers {
		g.Go(func() error {
			entries, err := s.collector.CollectItems(gctx, name, domain.CollectItemsRequest{
				ContentID:    in.ContentID,
				ContentType:  in.ContentType,
				ActivityLogs: logs,
			})
			if err != nil {
				return fmt.Errorf("collect %s: %w", name, err)
			}
			results[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []domain.ActivityEntry
	for _, entries := range results {
		out = append(out, entries...)
	}
	return out, nil
}
