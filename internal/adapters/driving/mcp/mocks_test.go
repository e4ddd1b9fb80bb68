package mcp

import (
	"context"

	"github.com/texpilot/texpilot/internal/core/domain"
)

// mockAnalysisService is a mock implementation of driving.AnalysisService.
type mockAnalysisService struct {
	document  domain.Document
	terms     domain.TermReport
	formulas  domain.FormulaReport
	citations domain.CitationReport
	rewrite   domain.RewriteResult
	figure    domain.FigureAnalysis
	table     domain.TermTable
	err       error

	// lastUpdateCache records the flag passed to CheckTerms.
	lastUpdateCache bool
}

func (m *mockAnalysisService) ParseStructure(_ context.Context, _ string) (domain.Document, error) {
	return m.document, m.err
}

func (m *mockAnalysisService) CheckTerms(_ context.Context, _ string, updateCache bool) (domain.TermReport, error) {
	m.lastUpdateCache = updateCache
	return m.terms, m.err
}

func (m *mockAnalysisService) CheckFormulas(_ context.Context, _ string) (domain.FormulaReport, error) {
	return m.formulas, m.err
}

func (m *mockAnalysisService) AnalyzeCitations(_ context.Context, _ string) (domain.CitationReport, error) {
	return m.citations, m.err
}

func (m *mockAnalysisService) RewriteParagraph(_ context.Context, _, _, _ string) (domain.RewriteResult, error) {
	return m.rewrite, m.err
}

func (m *mockAnalysisService) AnalyzeFigure(_ context.Context, _, _ string) (domain.FigureAnalysis, error) {
	return m.figure, m.err
}

func (m *mockAnalysisService) Terms(_ context.Context) (domain.TermTable, error) {
	return m.table, m.err
}

func (m *mockAnalysisService) ResetTerms(_ context.Context) error {
	return m.err
}
