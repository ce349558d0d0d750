package learnervocab

import (
	"github.com/vocadex/vocadex-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200

	sortByText      = "text"
	sortByLevel     = "level"
	sortByCreatedAt = "created_at"
	sortByUpdatedAt = "updated_at"

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// normalizeFilter applies defaults and clamps values without mutating the
// caller's filter.
func normalizeFilter(f domain.KnowledgeFilter) domain.KnowledgeFilter {
	switch f.SortBy {
	case sortByText, sortByLevel, sortByCreatedAt, sortByUpdatedAt:
	default:
		f.SortBy = sortByCreatedAt
	}

	switch f.SortOrder {
	case sortOrderASC, sortOrderDESC:
	default:
		f.SortOrder = sortOrderDESC
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	if f.Offset < 0 {
		f.Offset = 0
	}

	return f
}

// sortColumn maps the filter's SortBy to a concrete column.
func sortColumn(sortBy string) string {
	switch sortBy {
	case sortByText:
		return "v.text_normalized"
	case sortByLevel:
		return "lv.level"
	case sortByUpdatedAt:
		return "lv.updated_at"
	default:
		return "lv.created_at"
	}
}

// levelSet resolves the filter's level axis. An empty level set means every
// level except IGNORED; IGNORED rows must be requested explicitly.
func levelSet(levels []domain.KnowledgeLevel) []string {
	if len(levels) == 0 {
		ladder := make([]string, 0, len(domain.AllKnowledgeLevels())-1)
		for _, l := range domain.AllKnowledgeLevels() {
			if l != domain.KnowledgeLevelIgnored {
				ladder = append(ladder, l.String())
			}
		}
		return ladder
	}

	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = l.String()
	}
	return out
}
