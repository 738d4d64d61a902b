package domain

// SearchQuery is a search index query clause, passed through verbatim.
type SearchQuery = map[string]any

// SegmentCondition is one property condition of a segment.
type SegmentCondition struct {
	PropertyName  string `json:"propertyName,omitempty"`
	PropertyValue string `json:"propertyValue,omitempty"`
	BoardID       string `json:"boardId,omitempty"`
	PipelineID    string `json:"pipelineId,omitempty"`
}

// Segment is the part of a saved segment used to build its initial selector.
type Segment struct {
	ContentType string        `json:"contentType,omitempty"`
	Config      SegmentConfig `json:"config"`
}

// SegmentConfig scopes a segment to a board or a pipeline.
type SegmentConfig struct {
	BoardID    string `json:"boardId,omitempty"`
	PipelineID string `json:"pipelineId,omitempty"`
}

// SelectorOptions override the segment config when building a selector.
type SelectorOptions struct {
	PipelineID string `json:"pipelineId,omitempty"`
}

// ConditionExtension is the extra query a condition contributes. A nil
// Positive adds nothing.
type ConditionExtension struct {
	Positive               SearchQuery `json:"positive,omitempty"`
	IgnoreThisPostiveQuery bool        `json:"ignoreThisPostiveQuery,omitempty"`
}

// InitialSelector is the base query of a segment.
type InitialSelector struct {
	Positive SearchQuery `json:"positive,omitempty"`
}

// SegmentReply is the status envelope of segment hooks that can fail
// without an error, such as an association a service cannot resolve.
type SegmentReply[T any] struct {
	Data   T      `json:"data"`
	Status string `json:"status"`
}

// AssociationFilterRequest asks for the ids of mainType items associated
// with propertyType items matching the queries.
type AssociationFilterRequest struct {
	MainType      string      `json:"mainType"`
	PropertyType  string      `json:"propertyType"`
	PositiveQuery SearchQuery `json:"positiveQuery,omitempty"`
	NegativeQuery SearchQuery `json:"negativeQuery,omitempty"`
}

// TypesMap is the search field type mapping a service contributes.
type TypesMap struct {
	TypesMap map[string]any `json:"typesMap"`
}
