package entrycodec

import "testing"

func TestDecode_SinglePart(t *testing.T) {
	raw := "from: alice@example.com\nsubject: Hi\n\nbody text"
	fragments := Decode(raw)
	if len(fragments) != 1 {
		t.Fatalf("Decode() returned %d fragments, want 1", len(fragments))
	}
	f := fragments[0]
	if f.Body != "body text" {
		t.Errorf("Body = %q, want %q", f.Body, "body text")
	}
	want := [][2]string{{"from", "alice@example.com"}, {"subject", "Hi"}}
	if len(f.Headers) != len(want) {
		t.Fatalf("Headers = %v, want %v", f.Headers, want)
	}
	for i := range want {
		if f.Headers[i] != want[i] {
			t.Errorf("Headers[%d] = %v, want %v", i, f.Headers[i], want[i])
		}
	}
}

func TestDecode_MultiPart(t *testing.T) {
	raw := "content-type: multipart/alternative; boundary=frontier\n\nenvelope body" +
		boundary +
		"content-type: text/plain; charset=\"us-ascii\"\n\ntext body" +
		boundary +
		"content-type: text/html; charset=\"utf-8\"\n\nhtml body" +
		finalBoundary

	fragments := Decode(raw)
	if len(fragments) != 3 {
		t.Fatalf("Decode() returned %d fragments, want 3", len(fragments))
	}
	if fragments[0].Body != "envelope body" {
		t.Errorf("fragment[0].Body = %q, want %q", fragments[0].Body, "envelope body")
	}
	if fragments[1].Body != "text body" {
		t.Errorf("fragment[1].Body = %q, want %q", fragments[1].Body, "text body")
	}
	if fragments[2].Body != "html body" {
		t.Errorf("fragment[2].Body = %q, want %q", fragments[2].Body, "html body")
	}
}

func TestDecode_NoHeaderSeparator(t *testing.T) {
	fragments := Decode("just a body, no headers")
	if len(fragments) != 1 {
		t.Fatalf("Decode() returned %d fragments, want 1", len(fragments))
	}
	if len(fragments[0].Headers) != 0 {
		t.Errorf("Headers = %v, want none", fragments[0].Headers)
	}
	if fragments[0].Body != "" {
		t.Errorf("Body = %q, want empty (no blank-line separator found)", fragments[0].Body)
	}
}
