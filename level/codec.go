package level

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Encode serializes a level as pretty-printed JSON, the on-disk and export
// interchange format.
func Encode(l *Level) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return nil, fmt.Errorf("level: encode %q: %w", l.Name, err)
	}
	return buf.Bytes(), nil
}

// Decode parses a level document, applies defaults for absent cell metrics,
// and rejects documents that cannot describe a grid. Bricks are not cleaned
// here; callers run Clean after deciding the document is acceptable.
func Decode(data []byte) (*Level, error) {
	var l Level
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("level: decode: %w", err)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return nil, fmt.Errorf("level: decode: invalid grid %dx%d", l.Width, l.Height)
	}
	for i := range l.Bricks {
		if !l.Bricks[i].Type.Valid() {
			return nil, fmt.Errorf("level: decode: unknown brick type %q", l.Bricks[i].Type)
		}
	}
	if l.BrickWidth <= 0 {
		l.BrickWidth = DefaultBrickWidth
	}
	if l.BrickHeight <= 0 {
		l.BrickHeight = DefaultBrickHeight
	}
	if l.Padding < 0 {
		l.Padding = DefaultPadding
	}
	if l.Bricks == nil {
		l.Bricks = []Brick{}
	}
	return &l, nil
}

// SanitizeName turns a level name into a safe file basename.
func SanitizeName(name string) string {
	var sb strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		case r == ' ':
			sb.WriteByte('_')
		}
	}
	if sb.Len() == 0 {
		return "level"
	}
	return sb.String()
}
