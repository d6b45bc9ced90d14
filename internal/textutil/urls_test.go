package textutil

import (
	"reflect"
	"testing"
)

func TestSplitURLs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"none", nil, nil},
		{"single", []string{"https://a"}, []string{"https://a"}},
		{"comma joined", []string{"https://a, https://b"}, []string{"https://a", "https://b"}},
		{"mixed", []string{"https://a,", " ", "https://b,https://c"}, []string{"https://a", "https://b", "https://c"}},
		{"only blanks", []string{",, ,"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitURLs(tt.args); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("SplitURLs(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"toolong", 4, "too…"},
		{"héllo wörld", 6, "héllo…"},
		{"x", 0, ""},
		{"xy", 1, "…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.limit); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}
