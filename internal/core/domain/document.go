package domain

// Document represents the hierarchical structure of a LaTeX source file.
// It is the result of structural parsing, not a typeset rendering.
type Document struct {
	// Sections are the top-level sections in document order.
	Sections []Section `json:"sections"`

	// Content is the verbatim input text, including any preamble
	// before the first section marker.
	Content string `json:"content"`
}

// Section is a \section{...} block.
type Section struct {
	// Title is the section heading as written in the marker.
	Title string `json:"title"`

	// Content is the verbatim text between this section's marker and
	// the next \section marker (or end of document). It never includes
	// text belonging to a sibling or ancestor section.
	Content string `json:"content"`

	// Subsections are the \subsection blocks within this section,
	// in document order.
	Subsections []Subsection `json:"subsections"`
}

// Subsection is a \subsection{...} block scoped to its parent section.
type Subsection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
