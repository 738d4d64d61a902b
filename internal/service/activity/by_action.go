package activity

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
	"github.com/heartmarshall/crmhub-backend/internal/service/validation"
)

// ByActionInput pages through the activity of every item of a content type
// in a pipeline. Action is a comma separated list of actions.
type ByActionInput struct {
	ContentType string `json:"contentType" validate:"required"`
	Action      string `json:"action"`
	PipelineID  string `json:"pipelineId"`
	PerPage     int    `json:"perPage" validate:"min=0,max=1000"`
	Page        int    `json:"page" validate:"min=0"`
}

// ByAction returns activity logs with the given actions. The page is split
// evenly between the actions: activity log actions share three times the
// slice of deletes, which come from the audit log. Activity logs of a content
// type whose service is not registered are not read.
func (s *Service) ByAction(ctx context.Context, in ByActionInput) (*domain.ActivityPage, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	result := &domain.ActivityPage{ActivityLogs: []domain.ActivityEntry{}}
	if in.Action == "" {
		return result, nil
	}

	page := in.Page
	if page == 0 {
		page = domain.DefaultPage
	}
	perPage := in.PerPage
	if perPage == 0 {
		perPage = domain.DefaultActivityPerPage
	}

	actions := strings.Split(in.Action, ",")
	n := len(actions)
	logActions := slices.DeleteFunc(slices.Clone(actions), func(a string) bool {
		return a == domain.ActionDelete
	})
	withDeletes := len(logActions) < n

	var (
		logs, deletes           []domain.ActivityEntry
		logsTotal, deletesTotal int64
	)

	g, gctx := errgroup.WithContext(ctx)
	if len(logActions) > 0 {
		g.Go(func() error {
			service := domain.ContentTypeRef(in.ContentType).Service()
			known, err := s.registered(gctx, service)
			if err != nil {
				return err
			}
			if !known {
				return nil
			}
			contentIDs, err := s.collector.ContentIDs(gctx, service, in.PipelineID, in.ContentType)
			if err != nil {
				return fmt.Errorf("content ids of %s: %w", in.ContentType, err)
			}

			found, total, err := s.store.FindActivityLogs(gctx, domain.ActivityLogQuery{
				ContentType: in.ContentType,
				ContentIDs:  contentIDs,
				Actions:     logActions,
				Page:        domain.Page{Page: page, PerPage: max(1, perPage*3/n)},
			})
			if err != nil {
				return err
			}
			logs, logsTotal = convert(found, fromActivityLog), total
			return nil
		})
	}
	if withDeletes {
		g.Go(func() error {
			found, total, err := s.store.FindLogs(gctx, domain.LogQuery{
				Action: domain.ActionDelete,
				Type:   in.ContentType,
				Page:   domain.Page{Page: page, PerPage: max(1, perPage/n)},
			})
			if err != nil {
				return err
			}
			deletes, deletesTotal = convert(found, fromAuditLog), total
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("activity by action: %w", err)
	}

	result.ActivityLogs = append(append(result.ActivityLogs, logs...), deletes...)
	result.TotalCount = logsTotal + deletesTotal
	return result, nil
}
