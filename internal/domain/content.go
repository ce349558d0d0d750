package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContentItem is the slice of the content-authoring collaborator's model this
// core needs: identity, kind, and language. The body text itself stays with
// the collaborator and is passed into Reconcile as a raw string.
type ContentItem struct {
	ID           uuid.UUID
	Kind         ContentKind
	LanguageCode string
	Title        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ContentVocabularyLink records that a vocabulary item appears in a content
// item at least once. Set membership, not an occurrence count.
type ContentVocabularyLink struct {
	ContentID    uuid.UUID
	VocabularyID uuid.UUID
	CreatedAt    time.Time
}

// LearnerContentFlags carries per-learner presentation flags for one content
// item, sourced from collaborator-owned state.
type LearnerContentFlags struct {
	ContentID    uuid.UUID
	Bookmarked   bool
	LastViewedAt *time.Time
}

// LevelHistogram is a count per knowledge level over a content item's linked
// vocabulary for one learner. Untracked counts vocabulary the learner has no
// row for. The sum of all buckets equals the size of the link set.
type LevelHistogram struct {
	Counts    map[KnowledgeLevel]int
	Untracked int
}

// NewLevelHistogram returns a histogram with every level bucket present
// and zero.
func NewLevelHistogram() LevelHistogram {
	counts := make(map[KnowledgeLevel]int, len(AllKnowledgeLevels()))
	for _, l := range AllKnowledgeLevels() {
		counts[l] = 0
	}
	return LevelHistogram{Counts: counts}
}

// Total returns the number of linked vocabulary items the histogram covers.
func (h LevelHistogram) Total() int {
	total := h.Untracked
	for _, n := range h.Counts {
		total += n
	}
	return total
}

// ContentWithUserData is the read-side view-model the presentation layer
// serializes: the content item plus the learner's level distribution and
// flags.
type ContentWithUserData struct {
	Content   ContentItem
	Histogram LevelHistogram
	Flags     LearnerContentFlags
}
