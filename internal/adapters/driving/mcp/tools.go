package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/texpilot/texpilot/internal/core/domain"
)

// ReadTextInput is the input schema for the read_text tool.
type ReadTextInput struct {
	Text string `json:"text" jsonschema:"the LaTeX document content to parse"`
}

// CheckTermsInput is the input schema for the check_term_consistency tool.
type CheckTermsInput struct {
	Text        string `json:"text" jsonschema:"the LaTeX document content to check"`
	UpdateCache bool   `json:"update_cache,omitempty" jsonschema:"replace the shared term table with this call's table"`
}

// CheckFormulasInput is the input schema for the check_formulas tool.
type CheckFormulasInput struct {
	Text string `json:"text" jsonschema:"the LaTeX text containing formulas"`
}

// AnalyzeCitationsInput is the input schema for the analyze_citations tool.
type AnalyzeCitationsInput struct {
	Text string `json:"text" jsonschema:"the LaTeX document content to analyze"`
}

// RewriteParagraphInput is the input schema for the rewrite_paragraph tool.
type RewriteParagraphInput struct {
	Paragraph string `json:"paragraph" jsonschema:"the paragraph to rewrite"`
	Context   string `json:"context,omitempty" jsonschema:"surrounding context for the rewrite"`
	Style     string `json:"style,omitempty" jsonschema:"target style such as academic, concise or detailed"`
}

// AnalyzeImageContextInput is the input schema for the analyze_image_context tool.
type AnalyzeImageContextInput struct {
	FigureCaption   string `json:"figure_caption" jsonschema:"the figure caption and description"`
	SurroundingText string `json:"surrounding_text" jsonschema:"the text surrounding the figure"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "read_text",
		Description: "Parse a LaTeX document into its section and subsection hierarchy",
	}, s.handleReadText)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_term_consistency",
		Description: "Check the document for inconsistent term spellings and maintain the term table",
	}, s.handleCheckTerms)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_formulas",
		Description: "Extract all formulas and lint them for common delimiter and escaping mistakes",
	}, s.handleCheckFormulas)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_citations",
		Description: "Cross-reference citations against bibliography entries and report dangling or unused keys",
	}, s.handleAnalyzeCitations)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "rewrite_paragraph",
		Description: "Prepare a paragraph for context-aware rewriting by the assistant",
	}, s.handleRewriteParagraph)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_image_context",
		Description: "Prepare a figure caption and its surrounding text for relevance analysis by the assistant",
	}, s.handleAnalyzeImageContext)
}

// handleReadText handles the read_text tool invocation.
func (s *Server) handleReadText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReadTextInput,
) (*mcp.CallToolResult, domain.Document, error) {
	doc, err := s.ports.Analysis.ParseStructure(ctx, input.Text)
	if err != nil {
		return nil, domain.Document{}, err
	}
	return nil, doc, nil
}

// handleCheckTerms handles the check_term_consistency tool invocation.
func (s *Server) handleCheckTerms(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CheckTermsInput,
) (*mcp.CallToolResult, domain.TermReport, error) {
	report, err := s.ports.Analysis.CheckTerms(ctx, input.Text, input.UpdateCache)
	if err != nil {
		return nil, domain.TermReport{}, err
	}
	return nil, report, nil
}

// handleCheckFormulas handles the check_formulas tool invocation.
func (s *Server) handleCheckFormulas(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CheckFormulasInput,
) (*mcp.CallToolResult, domain.FormulaReport, error) {
	report, err := s.ports.Analysis.CheckFormulas(ctx, input.Text)
	if err != nil {
		return nil, domain.FormulaReport{}, err
	}
	return nil, report, nil
}

// handleAnalyzeCitations handles the analyze_citations tool invocation.
func (s *Server) handleAnalyzeCitations(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeCitationsInput,
) (*mcp.CallToolResult, domain.CitationReport, error) {
	report, err := s.ports.Analysis.AnalyzeCitations(ctx, input.Text)
	if err != nil {
		return nil, domain.CitationReport{}, err
	}
	return nil, report, nil
}

// handleRewriteParagraph handles the rewrite_paragraph tool invocation.
// The result echoes the paragraph with a fixed instruction; the calling
// assistant performs the actual rewrite.
func (s *Server) handleRewriteParagraph(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RewriteParagraphInput,
) (*mcp.CallToolResult, domain.RewriteResult, error) {
	result, err := s.ports.Analysis.RewriteParagraph(ctx, input.Paragraph, input.Context, input.Style)
	if err != nil {
		return nil, domain.RewriteResult{}, err
	}
	return nil, result, nil
}

// handleAnalyzeImageContext handles the analyze_image_context tool invocation.
func (s *Server) handleAnalyzeImageContext(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeImageContextInput,
) (*mcp.CallToolResult, domain.FigureAnalysis, error) {
	result, err := s.ports.Analysis.AnalyzeFigure(ctx, input.FigureCaption, input.SurroundingText)
	if err != nil {
		return nil, domain.FigureAnalysis{}, err
	}
	return nil, result, nil
}
