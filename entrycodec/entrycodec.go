// Package entrycodec parses the on-disk text of a message entry into an
// ordered list of Fragments, one per MIME part, each exposing its raw
// header pairs and raw body exactly as written by message.Encode. It is
// the decoding half of spec.md §4.2's "encode a part" rule:
// encode_headers + "\n" + encode_body, parts joined by "\n--frontier\n"
// and terminated by "\n--frontier--\n" when there is more than one part.
package entrycodec

import "strings"

const boundary = "\n--frontier\n"
const finalBoundary = "\n--frontier--\n"

// Fragment is the raw, untyped view of one message part.
type Fragment struct {
	// Headers holds (type_lowercased, value) pairs in the order they
	// appeared in the entry.
	Headers [][2]string
	// Body is the raw, still-possibly-Base64-encoded body text.
	Body string
}

// RawHeaders returns the fragment's header pairs.
func (f Fragment) RawHeaders() [][2]string { return f.Headers }

// RawBody returns the fragment's raw body.
func (f Fragment) RawBody() string { return f.Body }

// Decode splits raw entry text into fragments.
func Decode(raw string) []Fragment {
	var pieces []string
	if strings.Contains(raw, boundary) || strings.HasSuffix(raw, finalBoundary) {
		pieces = strings.Split(raw, boundary)
		last := pieces[len(pieces)-1]
		pieces[len(pieces)-1] = strings.TrimSuffix(last, finalBoundary)
	} else {
		pieces = []string{raw}
	}

	fragments := make([]Fragment, 0, len(pieces))
	for _, piece := range pieces {
		fragments = append(fragments, parseFragment(piece))
	}
	return fragments
}

func parseFragment(piece string) Fragment {
	headerBlock, body := piece, ""
	if idx := strings.Index(piece, "\n\n"); idx != -1 {
		headerBlock = piece[:idx]
		body = piece[idx+2:]
	}

	var headers [][2]string
	for _, line := range strings.Split(headerBlock, "\n") {
		if line == "" {
			continue
		}
		i := strings.Index(line, ": ")
		if i == -1 {
			continue
		}
		typ := strings.ToLower(line[:i])
		value := line[i+2:]
		headers = append(headers, [2]string{typ, value})
	}

	return Fragment{Headers: headers, Body: body}
}
