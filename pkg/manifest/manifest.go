package manifest

// RunManifest summarizes one batch extraction: how many inputs were read,
// which failed, and the keywords seen across the whole batch.
type RunManifest struct {
	GeneratedAt       string         `json:"generated_at" yaml:"generated_at"`
	TotalInputs       int            `json:"total_inputs" yaml:"total_inputs"`
	Successful        int            `json:"successful" yaml:"successful"`
	Failed            int            `json:"failed" yaml:"failed"`
	AggregateKeywords []string       `json:"aggregate_keywords" yaml:"aggregate_keywords"`
	Results           []InputSummary `json:"results" yaml:"results"`
}

// InputSummary describes the outcome for a single input.
type InputSummary struct {
	Source       string   `json:"source" yaml:"source"`
	Status       string   `json:"status" yaml:"status"` // "success" or "error"
	ErrorType    string   `json:"error_type,omitempty" yaml:"error_type,omitempty"`
	ErrorMessage string   `json:"error_message,omitempty" yaml:"error_message,omitempty"`
	SizeBytes    int64    `json:"size_bytes,omitempty" yaml:"size_bytes,omitempty"`
	FieldsFound  []string `json:"fields_found,omitempty" yaml:"fields_found,omitempty"`
	TopKeywords  []string `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
}
