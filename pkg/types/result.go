package types

// WordResult holds every match found for one entry of the word list
type WordResult struct {
	Word    string // As written in the puzzle's word list
	Matches []Match
}

// Found returns true if the word occurs at least once in the grid
func (wr *WordResult) Found() bool {
	return len(wr.Matches) > 0
}

// First returns the preferred match: the first in scan order
func (wr *WordResult) First() (Match, bool) {
	if len(wr.Matches) == 0 {
		return Match{}, false
	}
	return wr.Matches[0], true
}

// ResultSet holds one WordResult per word-list entry, in word-list order.
// Duplicate words keep independent entries.
type ResultSet []WordResult

// Lookup returns the last entry for word, mirroring a map keyed by word
func (rs ResultSet) Lookup(word string) (*WordResult, bool) {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i].Word == word {
			return &rs[i], true
		}
	}
	return nil, false
}

// TotalMatches returns the number of matches across all words
func (rs ResultSet) TotalMatches() int {
	total := 0
	for i := range rs {
		total += len(rs[i].Matches)
	}
	return total
}

// NotFound returns the words that have no match, in word-list order
func (rs ResultSet) NotFound() []string {
	var missing []string
	for i := range rs {
		if !rs[i].Found() {
			missing = append(missing, rs[i].Word)
		}
	}
	return missing
}

// Clone returns a deep copy of the result set
func (rs ResultSet) Clone() ResultSet {
	if rs == nil {
		return nil
	}

	dst := make(ResultSet, len(rs))
	for i, wr := range rs {
		dst[i] = WordResult{Word: wr.Word}
		if wr.Matches != nil {
			dst[i].Matches = make([]Match, len(wr.Matches))
			copy(dst[i].Matches, wr.Matches)
		}
	}
	return dst
}
