package activity

import (
	"sort"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

func fromNote(n domain.InternalNote) domain.ActivityEntry {
	return domain.ActivityEntry{
		ID:          n.ID,
		ContentType: domain.InternalNoteContentType,
		ContentID:   n.ContentTypeID,
		CreatedAt:   n.CreatedAt,
		CreatedBy:   n.CreatedUserID,
		Content:     n.Content,
		Source:      domain.ActivitySourceNote,
	}
}

func fromActivityLog(l domain.ActivityLog) domain.ActivityEntry {
	return domain.ActivityEntry{
		ID:          l.ID,
		Action:      l.Action,
		ContentType: l.ContentType,
		ContentID:   l.ContentID,
		CreatedAt:   l.CreatedAt,
		CreatedBy:   l.CreatedBy,
		Content:     l.Content,
		Source:      domain.ActivitySourceLog,
	}
}

func fromAuditLog(l domain.Log) domain.ActivityEntry {
	return domain.ActivityEntry{
		ID:          l.ID,
		Action:      l.Action,
		ContentType: l.Type,
		ContentID:   l.ObjectID,
		CreatedAt:   l.CreatedAt,
		CreatedBy:   l.CreatedBy,
		Content:     l.Description,
		Source:      domain.ActivitySourceAudit,
	}
}

func convert[T any](items []T, fn func(T) domain.ActivityEntry) []domain.ActivityEntry {
	out := make([]domain.ActivityEntry, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

// sortNewestFirst orders entries by creation time, newest first. Entries
// created at the same instant keep their relative order.
func sortNewestFirst(entries []domain.ActivityEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}
