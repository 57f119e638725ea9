package stub

import "strings"

// block locates the top-level "def <name>(" block in lines and returns the
// half-open line range it covers. The body runs until the first column-0
// line that is neither blank, a comment, nor inside a triple-quoted string.
// Trailing blank lines and column-0 comments are not part of it.
func block(lines []string, name string) (int, int, bool) {
	header := "def " + name + "("
	for i, line := range lines {
		if !strings.HasPrefix(line, header) {
			continue
		}
		open := scanQuotes(line, "")
		end := i + 1
		for j := i + 1; j < len(lines); j++ {
			inString := open != ""
			open = scanQuotes(lines[j], open)
			if inString || isIndented(lines[j]) {
				end = j + 1
				continue
			}
			trimmed := strings.TrimSpace(lines[j])
			if trimmed == "" || strings.HasPrefix(trimmed, "#") {
				continue
			}
			break
		}
		return i, end, true
	}
	return 0, 0, false
}

func isIndented(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}

// scanQuotes returns the triple-quote delimiter still open at the end of
// line, given the one open at its start.
func scanQuotes(line, open string) string {
	for {
		if open != "" {
			idx := strings.Index(line, open)
			if idx < 0 {
				return open
			}
			line, open = line[idx+3:], ""
			continue
		}
		dq, sq := strings.Index(line, `"""`), strings.Index(line, `'''`)
		switch {
		case dq < 0 && sq < 0:
			return ""
		case sq < 0 || (dq >= 0 && dq < sq):
			line, open = line[dq+3:], `"""`
		default:
			line, open = line[sq+3:], `'''`
		}
	}
}

// Extract returns the definition of the top-level function name in src.
func Extract(src, name string) (string, error) {
	lines := strings.Split(src, "\n")
	start, end, ok := block(lines, name)
	if !ok {
		return "", &MissingError{Name: name}
	}
	return strings.Join(lines[start:end], "\n"), nil
}

// MakeStub replaces the definition of each named function with its marker.
func MakeStub(src string, names ...string) (string, error) {
	lines := strings.Split(src, "\n")
	for _, name := range names {
		start, end, ok := block(lines, name)
		if !ok {
			return "", &MissingError{Name: name}
		}
		rest := append([]string{Marker(name)}, lines[end:]...)
		lines = append(lines[:start], rest...)
	}
	return strings.Join(lines, "\n"), nil
}
