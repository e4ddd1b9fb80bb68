package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_MismatchedParentheses(t *testing.T) {
	report := Validate(`$(a+b$`)

	require.Len(t, report.Formulas.Inline, 1)
	assert.Equal(t, "(a+b", report.Formulas.Inline[0])

	require.Len(t, report.Errors, 1)
	assert.Equal(t, "inline formula #1 has mismatched parentheses", report.Errors[0])
}

func TestValidate_BalancedParentheses(t *testing.T) {
	report := Validate(`$(a+b)(c+d)$`)
	assert.Empty(t, report.Errors)
}

func TestValidate_UnescapedSpecialCharacters(t *testing.T) {
	t.Run("subscript without any escape marker", func(t *testing.T) {
		report := Validate(`$x_i + y$`)
		require.Len(t, report.Errors, 1)
		assert.Equal(t, "inline formula #1 may have unescaped special characters", report.Errors[0])
	})

	t.Run("escape marker present suppresses the heuristic", func(t *testing.T) {
		report := Validate(`$x_{\mathrm{max}}$`)
		assert.Empty(t, report.Errors)
	})

	t.Run("plain formula passes", func(t *testing.T) {
		report := Validate(`$x + y = z$`)
		assert.Empty(t, report.Errors)
	})
}

func TestValidate_Categories(t *testing.T) {
	text := `inline $a+b$ and display $$c+d$$ then
\begin{equation}
e = f
\end{equation}
\begin{align}
g &= h \\
i &= j
\end{align}`

	report := Validate(text)

	assert.Equal(t, []string{"a+b"}, report.Formulas.Inline)
	assert.Equal(t, []string{"c+d"}, report.Formulas.Display)
	require.Len(t, report.Formulas.Equation, 1)
	assert.Contains(t, report.Formulas.Equation[0], "e = f")
	require.Len(t, report.Formulas.Align, 1)
}

func TestValidate_DisplayNotDoubleCountedAsInline(t *testing.T) {
	report := Validate(`$$a+b$$`)

	assert.Equal(t, []string{"a+b"}, report.Formulas.Display)
	assert.Empty(t, report.Formulas.Inline)
}

func TestValidate_ErrorOrderIsCategoryThenIndex(t *testing.T) {
	text := `$(x$ and $$((y$$ and
\begin{equation}
(z
\end{equation}`

	report := Validate(text)

	require.Len(t, report.Errors, 3)
	assert.Equal(t, "inline formula #1 has mismatched parentheses", report.Errors[0])
	assert.Equal(t, "display formula #1 has mismatched parentheses", report.Errors[1])
	assert.Equal(t, "equation formula #1 has mismatched parentheses", report.Errors[2])
}

func TestValidate_AlignSuggestsLabels(t *testing.T) {
	report := Validate(`\begin{align}x &= 1\end{align}`)

	require.Len(t, report.Suggestions, 1)
	assert.Contains(t, report.Suggestions[0], `\label{}`)
}

func TestValidate_NoAlignNoSuggestion(t *testing.T) {
	report := Validate(`$x$ $$y$$`)
	assert.Empty(t, report.Suggestions)
}

func TestValidate_EmptyText(t *testing.T) {
	report := Validate("")

	assert.Empty(t, report.Formulas.Inline)
	assert.Empty(t, report.Formulas.Display)
	assert.Empty(t, report.Formulas.Equation)
	assert.Empty(t, report.Formulas.Align)
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Suggestions)
}
