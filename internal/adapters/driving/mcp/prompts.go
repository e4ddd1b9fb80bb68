package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// improveParagraphPrompt guides the assistant through a context-aware
// paragraph revision.
const improveParagraphPrompt = `Improve the given LaTeX paragraph using its surrounding context.

Rewrite for clarity and precision while keeping the academic register,
the author's terminology, and all LaTeX markup intact. Prefer concrete
statements over vague ones and keep sentence order changes minimal.

Example input:
    In this part we talk about how the system performs. The results
    show our method is better than existing ones.

Example output:
    In this section we analyse the performance characteristics of the
    proposed system. The experimental results show that our method
    consistently outperforms existing approaches on every metric.`

// optimizeEquationPrompt guides the assistant toward better equation
// markup.
const optimizeEquationPrompt = `Improve how a LaTeX equation is expressed.

Prefer numbered environments over bare display math so equations can be
referenced, and break long equations across aligned lines.

Example input:
    $$x = a + b + c + d + e + f + g$$

Example output:
    \begin{equation}
        x = a + b + c + d + e + f + g
        \label{eq:sum}
    \end{equation}

    or, for a long right-hand side:

    \begin{align}
        x &= a + b + c \\
          &+ d + e \\
          &+ f + g
        \label{eq:sum}
    \end{align}`

// registerPrompts registers the static instructional prompts.
// They carry no computed content; the assistant does the rewriting.
func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "improve_paragraph",
		Description: "Improve a LaTeX paragraph using its surrounding context",
	}, staticPrompt("Improve a LaTeX paragraph using its surrounding context", improveParagraphPrompt))

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "optimize_equation",
		Description: "Improve how a LaTeX equation is expressed",
	}, staticPrompt("Improve how a LaTeX equation is expressed", optimizeEquationPrompt))
}

// staticPrompt returns a handler serving a fixed prompt text.
func staticPrompt(description, text string) mcp.PromptHandler {
	return func(_ context.Context, _ *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return &mcp.GetPromptResult{
			Description: description,
			Messages: []*mcp.PromptMessage{{
				Role:    "user",
				Content: &mcp.TextContent{Text: text},
			}},
		}, nil
	}
}
