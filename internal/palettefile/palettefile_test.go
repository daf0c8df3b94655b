package palettefile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/distinct/internal/colour"
)

func hexes(colors []colour.Color) []string {
	return colour.NewPalette(colors).ToHex()
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "bare hex lines",
			input: "#ff0000\n00ff00\n#00f\n",
			want:  []string{"#ff0000", "#00ff00", "#0000ff"},
		},
		{
			name: "comments and indexed keys",
			input: `// brand colours
colour0=#123456   // primary
; legacy comment
Color1 = abcdef

`,
			want: []string{"#123456", "#abcdef"},
		},
		{
			name:  "colour names",
			input: "navy\ncolour1=Bright Red\n",
			want:  []string{"#000080", "#f14c4c"},
		},
		{
			name:  "json array",
			input: ` ["#ff0000", "#00ff00"] `,
			want:  []string{"#ff0000", "#00ff00"},
		},
		{
			name:  "json object british",
			input: `{"colours": ["#010203"]}`,
			want:  []string{"#010203"},
		},
		{
			name:  "json object american",
			input: `{"colors": ["#040506"]}`,
			want:  []string{"#040506"},
		},
		{
			name:  "empty",
			input: "\n// nothing here\n",
			want:  []string{},
		},
		{
			name:    "unknown key",
			input:   "background=#000000",
			wantErr: true,
		},
		{
			name:    "bad hex",
			input:   "#ff0000\n#zzzzzz",
			wantErr: true,
		},
		{
			name:    "bad json",
			input:   `["#ff0000",`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, hexes(got)); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseReportsLine(t *testing.T) {
	_, err := Parse([]byte("#ff0000\n\n#12345"))
	if err == nil {
		t.Fatal("Parse() error = nil, want error")
	}

	var parseErr *colour.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Parse() error = %T, want *colour.ParseError in chain", err)
	}
	if !strings.HasPrefix(err.Error(), "line 3:") {
		t.Errorf("Parse() error = %q, want line 3 prefix", err.Error())
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.txt")
	if err := os.WriteFile(path, []byte("#ff0000\n#0000ff\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff([]string{"#ff0000", "#0000ff"}, hexes(got)); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}

func TestLoadTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.txt")
	data := []byte(strings.Repeat("#ff0000\n", MaxFileSize/8+1))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "exceeds") {
		t.Errorf("Load(huge) error = %v, want size limit error", err)
	}
}
