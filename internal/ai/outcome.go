package ai

// Kind discriminates the three possible results of an augmentation attempt.
// The caller pattern-matches over all three; none of them is an error.
type Kind int

const (
	// KindUnavailable means no usable response: missing credential,
	// network failure or a non-success status.
	KindUnavailable Kind = iota
	// KindUnstructured means the service answered but no JSON object
	// could be parsed; Raw carries the answer text.
	KindUnstructured
	// KindStructured means Analysis holds a parsed response.
	KindStructured
)

// Analysis is the JSON schema the summarizer is asked to return.
type Analysis struct {
	Summary     string   `json:"summary"`
	KeyPoints   []string `json:"keyPoints"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Risks       []string `json:"risks"`
	Suggestions []string `json:"suggestions"`
	Sentiment   string   `json:"sentiment"`
}

// Outcome is the result of one augmentation attempt.
type Outcome struct {
	Kind     Kind
	Analysis Analysis
	Raw      string
}

func unavailable() Outcome {
	return Outcome{Kind: KindUnavailable}
}

func unstructured(raw string) Outcome {
	return Outcome{Kind: KindUnstructured, Raw: raw}
}

func structured(a Analysis) Outcome {
	return Outcome{Kind: KindStructured, Analysis: a}
}
