// Package rewrite implements the instructional passthrough helpers.
// They have no algorithmic core on purpose: the input is returned
// verbatim together with a fixed instruction, and the MCP host's model
// performs the actual rewriting. Embedding rewriting logic here would
// break that delegation boundary.
package rewrite

import "github.com/texpilot/texpilot/internal/core/domain"

// DefaultStyle is used when the caller does not request a style.
const DefaultStyle = "academic"

// paragraphInstruction asks the host model to do the rewrite.
const paragraphInstruction = "Polish and rewrite this LaTeX paragraph in light of the " +
	"surrounding context, keeping a professional academic register and consistent terminology."

// figureInstruction asks the host model to assess caption/text fit.
const figureInstruction = "Assess how well this figure caption relates to the surrounding " +
	"text and suggest how to better integrate the figure with the prose."

// Paragraph echoes the paragraph, context and style with the fixed
// rewriting instruction attached.
func Paragraph(paragraph, context, style string) domain.RewriteResult {
	if style == "" {
		style = DefaultStyle
	}
	return domain.RewriteResult{
		Paragraph:   paragraph,
		Context:     context,
		Style:       style,
		Instruction: paragraphInstruction,
	}
}

// Figure echoes the caption and surrounding text with the fixed
// analysis instruction attached.
func Figure(caption, surrounding string) domain.FigureAnalysis {
	return domain.FigureAnalysis{
		Caption:     caption,
		Context:     surrounding,
		Instruction: figureInstruction,
	}
}
