package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSections_AllKeysAlwaysPresent(t *testing.T) {
	sections := ParseSections("no headers here at all")

	require.Len(t, sections, 5)
	for _, name := range []string{"experience", "education", "skills", "summary", "projects"} {
		_, ok := sections[name]
		assert.True(t, ok, "section %q must be present", name)
	}
}

func TestParseSections_NoHeadersYieldsEmptyValues(t *testing.T) {
	sections := ParseSections("just some text")

	for name, content := range sections {
		assert.Empty(t, content, "section %q should be empty", name)
	}
}

func TestParseSections_BasicResume(t *testing.T) {
	text := `Summary
Senior engineer with ten years of experience.

Skills
Python, Go, PostgreSQL

Education
BSc Computer Science`

	sections := ParseSections(text)

	assert.Contains(t, sections["summary"], "senior engineer")
	assert.Contains(t, sections["skills"], "python, go, postgresql")
	assert.Contains(t, sections["education"], "bsc computer science")
}

func TestParseSections_ContentExcludesNextHeader(t *testing.T) {
	text := `Skills
Python

Education
MIT`

	sections := ParseSections(text)

	assert.NotContains(t, sections["skills"], "education")
	assert.NotContains(t, sections["skills"], "mit")
}

func TestParseSections_CaseInsensitiveHeaders(t *testing.T) {
	sections := ParseSections("EDUCATION\nPhD Physics")

	assert.Contains(t, sections["education"], "phd physics")
}

func TestParseSections_OutOfOrderSections(t *testing.T) {
	text := `Education
Stanford

Experience
Built search engines`

	sections := ParseSections(text)

	assert.Contains(t, sections["education"], "stanford")
	assert.Contains(t, sections["experience"], "built search engines")
}

func TestParseSections_AlternativeHeaderNames(t *testing.T) {
	sections := ParseSections("Employment History\nWorked at a startup")

	assert.Contains(t, sections["experience"], "worked at a startup")
}

func TestParseSections_LastSectionRunsToEnd(t *testing.T) {
	sections := ParseSections("Projects\nbuilt a compiler\nand a database")

	assert.Contains(t, sections["projects"], "built a compiler")
	assert.Contains(t, sections["projects"], "and a database")
}
