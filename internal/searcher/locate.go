package searcher

import "strings"

// Span is an occurrence of a pattern in a string. End is inclusive.
type Span struct {
	Start int
	End   int
}

// Locate returns every non-overlapping occurrence of pattern in source, left
// to right. Each search resumes immediately after the previous occurrence, so
// "aa" in "aaa" yields only [0,1]. An empty pattern yields nothing.
func Locate(pattern, source string) []Span {
	if pattern == "" {
		return nil
	}

	var spans []Span
	offset := 0
	for offset < len(source) {
		idx := strings.Index(source[offset:], pattern)
		if idx < 0 {
			break
		}

		start := offset + idx
		end := start + len(pattern) - 1
		spans = append(spans, Span{Start: start, End: end})
		offset = end + 1
	}

	return spans
}
