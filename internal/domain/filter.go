package domain

// KnowledgeFilter contains filtering/pagination parameters for listing a
// learner's vocabulary.
type KnowledgeFilter struct {
	// LanguageCode restricts results to one language. nil means all.
	LanguageCode *string
	// Levels restricts results to the given level set. Empty means every
	// level except IGNORED; request IGNORED explicitly to see ignored rows.
	Levels []KnowledgeLevel
	// Search performs ILIKE '%...%' against vocabulary text_normalized.
	Search *string
	// SortBy: "text", "level", "created_at", "updated_at". Default created_at.
	SortBy string
	// SortOrder: "ASC" or "DESC". Default DESC.
	SortOrder string
	// Limit defaults to 50, clamped to 200.
	Limit int
	// Offset cannot be negative.
	Offset int
}
