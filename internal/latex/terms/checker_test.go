package terms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_CasingDrift(t *testing.T) {
	report := Check(`\term{Foo} some prose \term{foo}`)

	require.Len(t, report.Inconsistencies, 1)
	inc := report.Inconsistencies[0]
	assert.Equal(t, "Foo", inc.Original)
	assert.Equal(t, "foo", inc.Variant)
	assert.Equal(t, "Consider using 'Foo' consistently", inc.Suggestion)

	// First-seen spelling is canonical.
	assert.Equal(t, "Foo", report.Terms["foo"])
}

func TestCheck_ConsistentUsage(t *testing.T) {
	report := Check(`\term{Foo} more prose \term{Foo}`)

	assert.Empty(t, report.Inconsistencies)
	assert.Equal(t, "Foo", report.Terms["foo"])
}

func TestCheck_MixedFamiliesShareOneTable(t *testing.T) {
	// All markup families feed one table, so a drift between \textit
	// and \textbf is caught. A later exact match of the canonical
	// spelling is not reported.
	report := Check(`\textit{graph} \textbf{Graph} \term{graph}`)

	require.Len(t, report.Inconsistencies, 1)
	assert.Equal(t, "graph", report.Inconsistencies[0].Original)
	assert.Equal(t, "Graph", report.Inconsistencies[0].Variant)
}

func TestCheck_RepeatedVariantReportedEachTime(t *testing.T) {
	// A drifting spelling never becomes canonical, so every later
	// occurrence is reported again.
	report := Check(`\term{Foo} \term{foo} \term{foo}`)
	require.Len(t, report.Inconsistencies, 2)
	for _, inc := range report.Inconsistencies {
		assert.Equal(t, "Foo", inc.Original)
		assert.Equal(t, "foo", inc.Variant)
	}
}

func TestCheck_AllMarkupFamilies(t *testing.T) {
	text := `\textit{alpha} \textbf{beta} \term{gamma} \cite{delta2020}`
	report := Check(text)

	assert.Equal(t, "alpha", report.Terms["alpha"])
	assert.Equal(t, "beta", report.Terms["beta"])
	assert.Equal(t, "gamma", report.Terms["gamma"])
	// Citation keys take part in the term scan too.
	assert.Equal(t, "delta2020", report.Terms["delta2020"])
}

func TestCheck_EmptyText(t *testing.T) {
	report := Check("")

	require.NotNil(t, report.Terms)
	require.NotNil(t, report.Inconsistencies)
	assert.Empty(t, report.Terms)
	assert.Empty(t, report.Inconsistencies)
}

func TestCheck_FamilyOrderDeterminesCanonical(t *testing.T) {
	// Families are scanned in a fixed order (textit, textbf, term,
	// cite), so \textit wins even when \term appears earlier in the
	// document.
	report := Check(`\term{FOO} \textit{Foo}`)
	assert.Equal(t, "Foo", report.Terms["foo"])
}
