package player

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	fifty := strings.Repeat("abcde", 10)

	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{"short", "Artist - Title", 40, "Artist - Title"},
		{"exactly limit", fifty[:40], 40, fifty[:40]},
		{"fifty chars", fifty, 40, fifty[:37] + "..."},
		{"multibyte", strings.Repeat("é", 45), 40, strings.Repeat("é", 37) + "..."},
		{"tiny limit", "abcdef", 2, "ab"},
		{"limit equals ellipsis", "abcdef", 3, "abc"},
		{"limit one", "éàü", 1, "é"},
		{"limit four", "abcdef", 4, "a..."},
		{"empty", "", 40, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.limit); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTruncateNeverExceedsLimit(t *testing.T) {
	s := strings.Repeat("x", 60)
	for limit := 0; limit <= 45; limit++ {
		if n := utf8.RuneCountInString(Truncate(s, limit)); n > limit {
			t.Errorf("Truncate(60 chars, %d) has %d chars", limit, n)
		}
	}
}

func TestTruncateFiftyIsForty(t *testing.T) {
	got := Truncate(strings.Repeat("x", 50), MaxTextLen)
	if n := utf8.RuneCountInString(got); n != 40 {
		t.Errorf("length = %d, want 40", n)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("%q does not end in ...", got)
	}
}

func TestEncodeUnavailable(t *testing.T) {
	var buf bytes.Buffer
	if err := Unavailable.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	want := `{"text": "", "tooltip": "Player not available", "alt": "stopped", "class": "stopped"}` + "\n"
	if buf.String() != want {
		t.Errorf("Encode = %q, want %q", buf.String(), want)
	}
}

func TestEncodeEscapes(t *testing.T) {
	st := Status{Text: `AC/DC - "T.N.T." <live> & more`, Tooltip: "a\tb", Alt: "Playing", Class: "Playing"}

	var buf bytes.Buffer
	if err := st.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	line := buf.String()
	if strings.Count(line, "\n") != 1 || !strings.HasSuffix(line, "\n") {
		t.Errorf("output is not a single line: %q", line)
	}
	if strings.Contains(line, `<`) {
		t.Errorf("HTML characters escaped: %s", line)
	}

	var back Status
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, line)
	}
	if back != st {
		t.Errorf("decoded %+v, want %+v", back, st)
	}
}
