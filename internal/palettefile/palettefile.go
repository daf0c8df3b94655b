// Package palettefile reads target colours from palette files.
//
// Two formats are accepted. JSON is either an array of hex strings or an
// object with a "colours" (or "colors") array. Anything else is treated as
// text with one colour per line, written as a bare value or as colourN=value,
// where a value is a hex colour or a colour name such as "navy". Blank lines and lines starting with // or ; are skipped, as
// is anything after a // on a colour line.
package palettefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jmylchreest/distinct/internal/colour"
)

// MaxFileSize is the largest palette file Load will read.
const MaxFileSize = 1 << 20

type document struct {
	Colours []string `json:"colours"`
	Colors  []string `json:"colors"`
}

// Load reads and parses the palette file at path.
func Load(path string) ([]colour.Color, error) {
	f, err := os.Open(path) // #nosec G304 - User-specified input file, intended to be read
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("%s: palette file exceeds %d bytes", path, MaxFileSize)
	}

	colors, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return colors, nil
}

// Parse detects the format of data and returns the colours it lists.
func Parse(data []byte) ([]colour.Color, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		return parseJSON(trimmed)
	}
	return parseText(string(data))
}

func parseJSON(data []byte) ([]colour.Color, error) {
	var hexes []string
	if data[0] == '[' {
		if err := json.Unmarshal(data, &hexes); err != nil {
			return nil, fmt.Errorf("invalid JSON palette: %w", err)
		}
	} else {
		var doc document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid JSON palette: %w", err)
		}
		hexes = doc.Colours
		if len(hexes) == 0 {
			hexes = doc.Colors
		}
	}

	return colour.ParseList(hexes)
}

func parseText(content string) ([]colour.Color, error) {
	colors := make([]colour.Color, 0)

	for lineNum, line := range strings.Split(content, "\n") {
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)

		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		hex := line
		if name, value, ok := strings.Cut(line, "="); ok {
			lower := strings.ToLower(strings.TrimSpace(name))
			if !strings.HasPrefix(lower, "colour") && !strings.HasPrefix(lower, "color") {
				return nil, fmt.Errorf("line %d: unknown key %q, expected colourN=hex", lineNum+1, strings.TrimSpace(name))
			}
			hex = strings.TrimSpace(value)
		}

		c, err := colour.Parse(hex)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
		}
		colors = append(colors, c)
	}

	return colors, nil
}
