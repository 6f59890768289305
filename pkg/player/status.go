// Package player asks playerctl what is playing and turns the answer into
// a Waybar custom-module status record.
package player

import (
	"bytes"
	"encoding/json"
	"io"
	"unicode/utf8"
)

// Status is the four-field record Waybar's custom module consumes.
type Status struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip"`
	Alt     string `json:"alt"`
	Class   string `json:"class"`
}

var (
	// NoMedia is reported when playerctl runs but has nothing to say.
	NoMedia = Status{Tooltip: "No media playing", Alt: "stopped", Class: "stopped"}
	// Unavailable is reported when playerctl cannot be asked at all.
	Unavailable = Status{Tooltip: "Player not available", Alt: "stopped", Class: "stopped"}
)

const (
	// MaxTextLen is the longest text shown before truncation, in characters.
	MaxTextLen = 40
	ellipsis   = "..."
)

// Truncate shortens s to at most limit characters, replacing the tail with
// "..." when it had to cut. Limits too small to hold the ellipsis get a
// plain cut.
func Truncate(s string, limit int) string {
	limit = max(limit, 0)
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	if limit <= len(ellipsis) {
		return string(r[:limit])
	}
	return string(r[:limit-len(ellipsis)]) + ellipsis
}

// Encode writes s as a single JSON line with a fixed key order:
//
//	{"text": "...", "tooltip": "...", "alt": "...", "class": "..."}
func (s Status) Encode(w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	fields := []struct{ key, val string }{
		{"text", s.Text},
		{"tooltip", s.Tooltip},
		{"alt", s.Alt},
		{"class", s.Class},
	}
	for i, f := range fields {
		if i > 0 {
			buf.WriteString(", ")
		}
		writeString(&buf, f.key)
		buf.WriteString(": ")
		writeString(&buf, f.val)
	}
	buf.WriteString("}\n")

	_, err := w.Write(buf.Bytes())
	return err
}

func writeString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	// Drop the newline Encode appends.
	buf.Truncate(buf.Len() - 1)
}
