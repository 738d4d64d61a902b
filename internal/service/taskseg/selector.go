package taskseg

import (
	"context"
	"fmt"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

// PropertyConditionExtender returns the extra query of a segment
// condition. Board and pipeline conditions match the stages they contain;
// a product category condition matches tasks with any of its products and
// replaces the condition's own query.
func (s *Service) PropertyConditionExtender(ctx context.Context, cond domain.SegmentCondition) (domain.ConditionExtension, error) {
	var ext domain.ConditionExtension

	stageIDs, err := s.conditionStageIDs(ctx, cond.BoardID, cond.PipelineID, domain.SelectorOptions{})
	if err != nil {
		return ext, err
	}
	if len(stageIDs) > 0 {
		ext.Positive = stageTerms(stageIDs)
	}

	if cond.PropertyName != propertyProductCategory {
		return ext, nil
	}

	productIDs, err := s.core.ProductIDsByCategories(ctx, []string{cond.PropertyValue})
	if err != nil {
		return ext, fmt.Errorf("products of category %s: %w", cond.PropertyValue, err)
	}
	if len(productIDs) > 0 {
		should := make([]any, 0, len(productIDs))
		for _, id := range productIDs {
			should = append(should, map[string]any{"match": map[string]any{fieldProductID: id}})
		}
		ext.Positive = domain.SearchQuery{"bool": map[string]any{"should": should}}
		ext.IgnoreThisPostiveQuery = true
	}
	return ext, nil
}

// InitialSelector returns the base query of a task segment: the stages of
// its board or pipeline.
func (s *Service) InitialSelector(ctx context.Context, seg domain.Segment, opts domain.SelectorOptions) (domain.InitialSelector, error) {
	var sel domain.InitialSelector

	stageIDs, err := s.conditionStageIDs(ctx, seg.Config.BoardID, seg.Config.PipelineID, opts)
	if err != nil {
		return sel, err
	}
	if len(stageIDs) > 0 {
		sel.Positive = stageTerms(stageIDs)
	}
	return sel, nil
}

// conditionStageIDs resolves the stages a board/pipeline pair refers to.
// A pipeline in opts wins; otherwise a pipeline counts only together with
// its board, and a board alone selects all of its pipelines.
func (s *Service) conditionStageIDs(ctx context.Context, boardID, pipelineID string, opts domain.SelectorOptions) ([]string, error) {
	var pipelineIDs []string
	switch {
	case opts.PipelineID != "":
		pipelineIDs = []string{opts.PipelineID}
	case boardID != "" && pipelineID != "":
		pipelineIDs = []string{pipelineID}
	case boardID != "":
		ids, err := s.tasks.PipelineIDsByBoard(ctx, boardID)
		if err != nil {
			return nil, fmt.Errorf("condition stages: %w", err)
		}
		pipelineIDs = ids
	}
	if len(pipelineIDs) == 0 {
		return nil, nil
	}

	stageIDs, err := s.tasks.StageIDsByPipelines(ctx, pipelineIDs)
	if err != nil {
		return nil, fmt.Errorf("condition stages: %w", err)
	}
	return stageIDs, nil
}

func stageTerms(stageIDs []string) domain.SearchQuery {
	return domain.SearchQuery{"terms": map[string]any{fieldStageID: stageIDs}}
}
