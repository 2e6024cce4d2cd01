package sanitize

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain text", "plain text"},
		{"<b>bold</b>", "bold"},
		{"<script>alert(1)</script>Marie", "Marie"},
		{"", ""},
		{"a < b", "a &lt; b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Text(tt.input); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
