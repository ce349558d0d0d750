package domain

// KnowledgeLevel represents how well a learner knows a vocabulary item.
// Levels form an ordered ladder from NEW to KNOWN; IGNORED sits outside the
// ladder and marks vocabulary the learner chose not to track. Any transition
// between levels (including into and out of IGNORED) is allowed — the level is
// a user-editable label, not a progression gate.
type KnowledgeLevel string

const (
	KnowledgeLevelNew        KnowledgeLevel = "NEW"
	KnowledgeLevelRecognized KnowledgeLevel = "RECOGNIZED"
	KnowledgeLevelFamiliar   KnowledgeLevel = "FAMILIAR"
	KnowledgeLevelLearned    KnowledgeLevel = "LEARNED"
	KnowledgeLevelKnown      KnowledgeLevel = "KNOWN"
	KnowledgeLevelIgnored    KnowledgeLevel = "IGNORED"
)

func (l KnowledgeLevel) String() string { return string(l) }

func (l KnowledgeLevel) IsValid() bool {
	switch l {
	case KnowledgeLevelNew, KnowledgeLevelRecognized, KnowledgeLevelFamiliar,
		KnowledgeLevelLearned, KnowledgeLevelKnown, KnowledgeLevelIgnored:
		return true
	}
	return false
}

// Rank returns the position of the level on the familiarity ladder,
// 0 for NEW through 4 for KNOWN. IGNORED has no rank and returns -1.
func (l KnowledgeLevel) Rank() int {
	switch l {
	case KnowledgeLevelNew:
		return 0
	case KnowledgeLevelRecognized:
		return 1
	case KnowledgeLevelFamiliar:
		return 2
	case KnowledgeLevelLearned:
		return 3
	case KnowledgeLevelKnown:
		return 4
	}
	return -1
}

// AllKnowledgeLevels lists every valid level, ladder order first, IGNORED last.
func AllKnowledgeLevels() []KnowledgeLevel {
	return []KnowledgeLevel{
		KnowledgeLevelNew,
		KnowledgeLevelRecognized,
		KnowledgeLevelFamiliar,
		KnowledgeLevelLearned,
		KnowledgeLevelKnown,
		KnowledgeLevelIgnored,
	}
}

// ContentKind identifies the kind of text-bearing content that links
// to vocabulary.
type ContentKind string

const (
	ContentKindText   ContentKind = "TEXT"
	ContentKindLesson ContentKind = "LESSON"
)

func (k ContentKind) String() string { return string(k) }

func (k ContentKind) IsValid() bool {
	switch k {
	case ContentKindText, ContentKindLesson:
		return true
	}
	return false
}
