package domain

// DefaultRecommendedAction is attached to every anomaly entry
const DefaultRecommendedAction = "Review and correct invalid fields"

// Issue describes one field of a row that failed validation
type Issue struct {
	Field string `json:"field" yaml:"field"`
	Type  Reason `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

// AnomalyEntry collects the issues found in a single row
type AnomalyEntry struct {
	SourceRowID        string   `json:"source_row_id" yaml:"source_row_id"`
	Issues             []Issue  `json:"issues" yaml:"issues"`
	RecommendedActions []string `json:"recommended_actions" yaml:"recommended_actions"`
}

// NewAnomalyEntry creates an entry with the default recommended action
func NewAnomalyEntry(sourceRowID string, issues []Issue) *AnomalyEntry {
	return &AnomalyEntry{
		SourceRowID:        sourceRowID,
		Issues:             issues,
		RecommendedActions: []string{DefaultRecommendedAction},
	}
}
