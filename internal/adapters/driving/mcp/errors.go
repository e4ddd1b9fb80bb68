// Package mcp provides an MCP (Model Context Protocol) server adapter
// for TexPilot. It exposes the LaTeX analysis engines as tools that AI
// assistants can call against documents they are editing.
package mcp

import "errors"

// ErrMissingAnalysisService is returned when the analysis service is not provided.
var ErrMissingAnalysisService = errors.New("mcp: analysis service is required")
