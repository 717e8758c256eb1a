// Package filter implements the REPL's GREP command: a single compiled
// pattern matched against a message's encoded form.
//
// Adapted from the teacher's include/exclude header/body filter (whose
// job was deciding which archived messages to upload): mua has no
// separate header/body channel to filter on since a message's headers
// and body are both already folded into message.Encode, so this keeps
// only the one compiled-pattern, match-or-not shape.
package filter

import "regexp"

// Filter holds one compiled pattern.
type Filter struct {
	pattern *regexp.Regexp
}

// New compiles pattern into a Filter.
func New(pattern string) (*Filter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Filter{pattern: re}, nil
}

// Allows reports whether text matches the filter's pattern.
func (f *Filter) Allows(text string) bool {
	return f.pattern.MatchString(text)
}
