// Package stub fills and builds student stub templates. A stub is a
// reference solution where every function the learner has to write is
// replaced by a marker line such as "@@binary_to_base64@@".
package stub

import (
	"fmt"
	"regexp"
	"strings"
)

var markerRe = regexp.MustCompile(`@@([A-Za-z_][A-Za-z0-9_]*)@@`)

// Marker returns the placeholder text for name.
func Marker(name string) string {
	return "@@" + name + "@@"
}

// MissingError reports a placeholder or definition that could not be resolved.
type MissingError struct {
	Name string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("no definition for %q", e.Name)
}

// Placeholders lists the marker names in src in order of first appearance.
func Placeholders(src string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range markerRe.FindAllStringSubmatch(src, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

func IsStub(src string) bool {
	return markerRe.MatchString(src)
}

// Fill replaces every marker in src with its body. All markers must be
// covered; the first uncovered one is reported.
func Fill(src string, bodies map[string]string) (string, error) {
	for _, name := range Placeholders(src) {
		if _, ok := bodies[name]; !ok {
			return "", &MissingError{Name: name}
		}
	}
	return markerRe.ReplaceAllStringFunc(src, func(m string) string {
		return bodies[strings.Trim(m, "@")]
	}), nil
}

// FillFromSolution fills every marker in stub with the matching
// definition taken from solution.
func FillFromSolution(stub, solution string) (string, error) {
	bodies := make(map[string]string)
	for _, name := range Placeholders(stub) {
		body, err := Extract(solution, name)
		if err != nil {
			return "", err
		}
		bodies[name] = body
	}
	return Fill(stub, bodies)
}
