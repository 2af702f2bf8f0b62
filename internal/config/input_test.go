package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/decimaledit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFieldSet_Success(t *testing.T) {
	path := writeTemp(t, "title: checkout\n"+
		"fields:\n"+
		"  - name: price\n"+
		"    prefix: \"$\"\n"+
		"    max_value: 9999.99\n"+
		"    max_integer_digits: 4\n"+
		"    max_decimal_digits: 2\n"+
		"  - name: weight\n"+
		"    suffix: kg\n"+
		"    max_decimal_digits: 3\n"+
		"    hint: weight\n"+
		"    locale: de\n")

	set, err := NewInputParser().LoadFieldSet(path)
	require.NoError(t, err)
	assert.Equal(t, "checkout", set.Title)
	require.Len(t, set.Fields, 2)

	price := set.Fields[0]
	assert.Equal(t, "$", price.Prefix)
	assert.Equal(t, 9999.99, price.MaxValue)
	assert.Equal(t, 4, price.MaxIntegerDigits)
	assert.Equal(t, 2, price.MaxDecimalDigits)
	assert.Equal(t, "en", price.Locale)

	weight := set.Fields[1]
	assert.Equal(t, math.MaxFloat64, weight.MaxValue)
	assert.Equal(t, 15, weight.MaxIntegerDigits)
	assert.Equal(t, "de", weight.Locale)
	assert.True(t, weight.HasHint())
}

func TestLoadFieldSet_FileNotFound(t *testing.T) {
	set, err := NewInputParser().LoadFieldSet("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, set)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFieldSet_InvalidYAML(t *testing.T) {
	path := writeTemp(t, "fields:\n\t- name: price\n")

	set, err := NewInputParser().LoadFieldSet(path)
	assert.Error(t, err)
	assert.Nil(t, set)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParseFieldSet_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"no fields", "fields: []\n", "no fields provided"},
		{"missing name", "fields:\n  - suffix: kg\n", "name is required"},
		{"duplicate name", "fields:\n  - name: a\n  - name: a\n", "duplicate name"},
		{"negative decimals", "fields:\n  - name: a\n    max_decimal_digits: -1\n", "max decimal digits"},
		{"zero integer digits", "fields:\n  - name: a\n    max_integer_digits: 0\n", "max integer digits"},
		{"bad locale", "fields:\n  - name: a\n    locale: \"@@\"\n", "invalid locale"},
		{"blank hint", "fields:\n  - name: a\n    hint: \"  \"\n", "hint cannot be blank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().ParseFieldSet([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseFieldSet_ExplicitMaxValues(t *testing.T) {
	set, err := NewInputParser().ParseFieldSet([]byte(`
fields:
  - name: locked
    max_value: 0
    max_decimal_digits: 2
  - name: negative
    max_value: -5
  - name: open
`))
	require.NoError(t, err)
	require.Len(t, set.Fields, 3)
	assert.Equal(t, 0.0, set.Fields[0].MaxValue)
	assert.Equal(t, -5.0, set.Fields[1].MaxValue)
	assert.Equal(t, math.MaxFloat64, set.Fields[2].MaxValue)
}

func TestParseScript_Success(t *testing.T) {
	script, err := NewInputParser().ParseScript([]byte(`
name: cents
field:
  suffix: kg
  max_decimal_digits: 2
events:
  - type: type
    text: "579"
  - type: backspace
    count: 2
  - type: select
    start: 0
    end: 3
  - type: set
    value: 12.5
  - type: paste
    text: "1,000.00"
  - type: clear
`))
	require.NoError(t, err)

	assert.Equal(t, "cents", script.Name)
	assert.Equal(t, "kg", script.Field.Suffix)
	assert.Equal(t, 2, script.Field.MaxDecimalDigits)
	assert.Equal(t, 15, script.Field.MaxIntegerDigits)
	require.Len(t, script.Events, 6)
	assert.Equal(t, domain.EventKeys, script.Events[0].Type)
	assert.Equal(t, 2, script.Events[1].Count)
	assert.Equal(t, 12.5, script.Events[3].Value)
}

func TestParseScript_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"no events", "field: {}\nevents: []\n", "no events provided"},
		{"unknown event", "events:\n  - type: wiggle\n", "unknown event type"},
		{"type without text", "events:\n  - type: type\n", "requires text"},
		{"negative backspace", "events:\n  - type: backspace\n    count: -1\n", "cannot be negative"},
		{"negative selection", "events:\n  - type: select\n    start: -1\n", "cannot be negative"},
		{"bad field", "field:\n  max_integer_digits: -1\nevents:\n  - type: clear\n", "field validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().ParseScript([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScript_FileNotFound(t *testing.T) {
	_, err := NewInputParser().LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}
