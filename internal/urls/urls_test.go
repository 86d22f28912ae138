package urls

import "testing"

func TestEmbed(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"qz0aGYrrlhU", "https://www.youtube.com/embed/qz0aGYrrlhU"},
		{"a b?c", "https://www.youtube.com/embed/a%20b%3Fc"},
	}
	for _, tt := range tests {
		if got := Embed(tt.id); got != tt.want {
			t.Errorf("Embed(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
