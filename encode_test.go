package cif

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

const encodeInput = "data_calcite\n" +
	"_cell_length_a 4.99\n" +
	"_chemical_name_mineral 'Calcite'\n" +
	"loop_\n_atom_site_label\n_atom_site_fract_x\nCa1 0\nC1 0.25\n"

func TestEncodeJSON(t *testing.T) {
	blocks, err := Parse([]byte(encodeInput))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeJSON(&buf, blocks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	var doc map[string]map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}

	items := doc["data_calcite"]
	assert.Equal(t, "4.99", items["cell_length_a"])
	assert.Equal(t, "'Calcite'", items["chemical_name_mineral"])

	table, ok := items["atom_site"].(map[string]any)
	if !ok {
		t.Fatalf("atom_site is %T, want object", items["atom_site"])
	}
	assert.Equal(t, []any{"Ca1", "C1"}, table["atom_site_label"])
	assert.Equal(t, []any{"0", "0.25"}, table["atom_site_fract_x"])

	// Items appear sorted by name; output is indented and newline-terminated.
	assert.Less(t, strings.Index(out, "atom_site"), strings.Index(out, "cell_length_a"))
	assert.Less(t, strings.Index(out, "cell_length_a"), strings.Index(out, "chemical_name_mineral"))
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.True(t, strings.Contains(out, "    "))
}

func TestEncodeJSONMultiBlockOrder(t *testing.T) {
	blocks, err := Parse([]byte("data_zzz\n_a 1\ndata_aaa\n_b 2\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeJSON(&buf, blocks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	// Blocks keep document order even when it is not alphabetical.
	assert.Less(t, strings.Index(out, "data_zzz"), strings.Index(out, "data_aaa"))
}

func TestEncodeYAML(t *testing.T) {
	blocks, err := Parse([]byte(encodeInput))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeYAML(&buf, blocks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	var doc map[string]map[string]any
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, out)
	}

	items := doc["data_calcite"]
	assert.Equal(t, "4.99", items["cell_length_a"])

	table, ok := items["atom_site"].(map[string]any)
	if !ok {
		t.Fatalf("atom_site is %T, want mapping", items["atom_site"])
	}
	assert.Equal(t, []any{"Ca1", "C1"}, table["atom_site_label"])
}

func TestEncodeYAMLKeepsNewlines(t *testing.T) {
	blocks, err := Parse([]byte("data_x\n_note\n;\nline one\nline two\n;\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeYAML(&buf, blocks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc map[string]map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	assert.Equal(t, "'line one\nline two'", doc["data_x"]["note"])
}

func TestEncodeJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, "{}\n", buf.String())
}
