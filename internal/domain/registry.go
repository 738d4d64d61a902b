package domain

import "strings"

// ServiceDescriptor is a known sibling service and its declared metadata.
type ServiceDescriptor struct {
	Name string      `json:"name" yaml:"name"`
	Meta ServiceMeta `json:"meta" yaml:"meta"`
}

type ServiceMeta struct {
	Logs     *LogsMeta     `json:"logs,omitempty" yaml:"logs"`
	Segments *SegmentsMeta `json:"segments,omitempty" yaml:"segments"`
}

type LogsMeta struct {
	ProvidesActivityLog bool `json:"providesActivityLog" yaml:"providesActivityLog"`
}

type SegmentsMeta struct {
	ContentTypes      []SegmentContentType `json:"contentTypes,omitempty" yaml:"contentTypes"`
	DependentServices []DependentService   `json:"dependentServices,omitempty" yaml:"dependentServices"`
}

type SegmentContentType struct {
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description"`
	EsIndex     string `json:"esIndex,omitempty" yaml:"esIndex"`
}

type DependentService struct {
	Name       string `json:"name" yaml:"name"`
	TwoWay     bool   `json:"twoWay,omitempty" yaml:"twoWay"`
	Associated bool   `json:"associated,omitempty" yaml:"associated"`
}

// ProvidesActivityLog reports whether the service answers collectItems calls.
func (s ServiceDescriptor) ProvidesActivityLog() bool {
	return s.Meta.Logs != nil && s.Meta.Logs.ProvidesActivityLog
}

// ContentTypeRef splits "<service>:<name>" references such as "sales:deal".
type ContentTypeRef string

// Service returns the owning service name.
func (r ContentTypeRef) Service() string {
	service, _, _ := strings.Cut(string(r), ":")
	return service
}

// Name returns the part after the service prefix, or the whole value when
// there is no prefix.
func (r ContentTypeRef) Name() string {
	_, name, found := strings.Cut(string(r), ":")
	if !found {
		return string(r)
	}
	return name
}
