package domain

// lineScanner yields the lines of a text one at a time, each split into its
// leading whitespace (the maximal prefix of spaces and tabs) and the rest of
// the line. A run of consecutive CR/LF characters is consumed as a single
// terminator and never exposed to callers.
type lineScanner struct {
	text string
	pos  int
}

func newLineScanner(text string) *lineScanner {
	return &lineScanner{text: text}
}

// next returns the next line. ok is false once the input is exhausted.
func (s *lineScanner) next() (ws, rest string, ok bool) {
	if s.pos >= len(s.text) {
		return "", "", false
	}

	start := s.pos

	i := start
	for i < len(s.text) && (s.text[i] == ' ' || s.text[i] == '\t') {
		i++
	}

	j := i
	for j < len(s.text) && s.text[j] != '\r' && s.text[j] != '\n' {
		j++
	}

	end := j
	for end < len(s.text) && (s.text[end] == '\r' || s.text[end] == '\n') {
		end++
	}

	s.pos = end

	return s.text[start:i], s.text[i:j], true
}
