package domain

import (
	"encoding/json"
	"time"
)

// ActivitySource tags where a normalized activity entry came from.
type ActivitySource string

const (
	ActivitySourceRemote ActivitySource = "remote"
	ActivitySourceNote   ActivitySource = "note"
	ActivitySourceLog    ActivitySource = "log"
	ActivitySourceAudit  ActivitySource = "audit"
)

// ActivityEntry is the normalized shape of every item in an activity feed.
// Raw holds a collector's item as received; an entry with Raw set encodes
// to it unchanged.
type ActivityEntry struct {
	ID          string          `json:"_id"`
	Action      string          `json:"action,omitempty"`
	ContentType string          `json:"contentType,omitempty"`
	ContentID   string          `json:"contentId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy,omitempty"`
	Content     any             `json:"content,omitempty"`
	Source      ActivitySource  `json:"-"`
	Raw         json.RawMessage `json:"-"`
}

func (e ActivityEntry) MarshalJSON() ([]byte, error) {
	if len(e.Raw) > 0 {
		return e.Raw, nil
	}
	type entry ActivityEntry
	return json.Marshal(entry(e))
}

// InternalNote is a note attached to a content item.
type InternalNote struct {
	ID               string    `bson:"_id" json:"_id"`
	ContentType      string    `bson:"contentType" json:"contentType"`
	ContentTypeID    string    `bson:"contentTypeId" json:"contentTypeId"`
	Content          string    `bson:"content" json:"content"`
	CreatedUserID    string    `bson:"createdUserId,omitempty" json:"createdUserId,omitempty"`
	MentionedUserIDs []string  `bson:"mentionedUserIds,omitempty" json:"mentionedUserIds,omitempty"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
}

// ActivityLog is a locally stored activity log document.
type ActivityLog struct {
	ID          string    `bson:"_id" json:"_id"`
	ContentID   string    `bson:"contentId" json:"contentId"`
	ContentType string    `bson:"contentType" json:"contentType"`
	Action      string    `bson:"action" json:"action"`
	Content     any       `bson:"content,omitempty" json:"content,omitempty"`
	CreatedBy   string    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// Log is a generic audit log document (creates, updates and deletes).
type Log struct {
	ID          string    `bson:"_id" json:"_id"`
	Action      string    `bson:"action" json:"action"`
	Type        string    `bson:"type" json:"type"`
	ObjectID    string    `bson:"objectId,omitempty" json:"objectId,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedBy   string    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// ActivityPage is a page of activity entries with the total across sources.
type ActivityPage struct {
	ActivityLogs []ActivityEntry `json:"activityLogs"`
	TotalCount   int64           `json:"totalCount"`
}

// ActivityLogQuery selects local activity logs by content and action.
type ActivityLogQuery struct {
	ContentType string
	ContentIDs  []string
	Actions     []string
	Page        Page
}

// LogQuery selects generic audit logs by action and object type.
type LogQuery struct {
	Action string
	Type   string
	Page   Page
}

// CollectItemsRequest asks a service's activity collector for the entries
// of one content item.
type CollectItemsRequest struct {
	ContentID    string        `json:"contentId"`
	ContentType  string        `json:"contentType"`
	ActivityType string        `json:"activityType,omitempty"`
	ActivityLogs []ActivityLog `json:"activityLogs,omitempty"`
}
