package filter

import "testing"

func BenchmarkFilter_Allows(b *testing.B) {
	f, err := New("From:.*@example\\.com")
	if err != nil {
		b.Fatal(err)
	}

	encoded := "From: test@example.com\nTo: user@example.com\nSubject: Test\n\nThis is a test message body with some content."

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Allows(encoded)
	}
}
