package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for TexPilot resources.
const uriScheme = "texpilot://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource exposing the shared canonical term table.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "terms",
		Name:        "terms",
		Description: "Canonical term table built from previous consistency checks",
		MIMEType:    "application/json",
	}, s.handleTermsResource)
}

// handleTermsResource returns the current canonical term table.
func (s *Server) handleTermsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	table, err := s.ports.Analysis.Terms(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading term table: %w", err)
	}

	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling term table: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
