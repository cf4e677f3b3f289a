package formats

import "testing"

func TestParseYAML(t *testing.T) {
	data := []byte(`id: " pit "
name: The Pit
layout: |
  #####
  #@.>#
  #####

metadata:
  music: none
`)
	lvl, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if lvl.ID != "pit" || lvl.Name != "The Pit" {
		t.Errorf("unexpected id/name %q %q", lvl.ID, lvl.Name)
	}
	if len(lvl.Layout) != 3 || lvl.Layout[1] != "#@.>#" {
		t.Errorf("unexpected layout %q", lvl.Layout)
	}
	if lvl.Metadata["music"] != "none" {
		t.Errorf("metadata = %v", lvl.Metadata)
	}
}

func TestParseYAMLMalformed(t *testing.T) {
	if _, err := ParseYAML([]byte("layout: [oops")); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestSplitLayout(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected int
	}{
		{"trailing newline", "##\n#@\n", 2},
		{"windows line endings", "##\r\n#@\r\n", 2},
		{"trailing blank lines", "##\n\n  \n", 1},
		{"empty", "", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rows := SplitLayout(tc.in)
			if len(rows) != tc.expected {
				t.Errorf("SplitLayout(%q) = %q, expected %d rows", tc.in, rows, tc.expected)
			}
			for _, r := range rows {
				if len(r) > 0 && r[len(r)-1] == '\r' {
					t.Errorf("row %q kept a carriage return", r)
				}
			}
		})
	}
}
