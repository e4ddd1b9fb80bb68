package domain

// RewriteResult echoes a paragraph back to the caller together with a
// fixed instruction. The actual rewriting is performed by the MCP
// host's own model; this boundary is deliberate and must be kept.
type RewriteResult struct {
	Paragraph   string `json:"paragraph"`
	Context     string `json:"context"`
	Style       string `json:"style"`
	Instruction string `json:"instruction"`
}

// FigureAnalysis echoes a figure caption and its surrounding text back
// to the caller with a fixed instruction, delegating the actual
// analysis to the host model.
type FigureAnalysis struct {
	Caption     string `json:"caption"`
	Context     string `json:"context"`
	Instruction string `json:"instruction"`
}
