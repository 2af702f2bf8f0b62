package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/decimaledit/internal/domain"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeKeys(d *DecimalInput, s string) {
	for _, r := range s {
		d.Update(runes(string(r)))
	}
}

func fieldConfig(name, prefix, suffix string, decimals int) domain.FieldConfig {
	cfg := domain.NewFieldConfig().WithDecimalDigits(decimals)
	cfg.Name, cfg.Prefix, cfg.Suffix = name, prefix, suffix
	return cfg
}

func newInput(t *testing.T, cfg domain.FieldConfig) *DecimalInput {
	t.Helper()
	d, err := NewDecimalInput(cfg, nil)
	require.NoError(t, err)
	d.Focus()
	return d
}

func TestDecimalInput_InitialText(t *testing.T) {
	d := newInput(t, fieldConfig("price", "$", "", 2))
	assert.Equal(t, "$ 0.00", d.Text())
	assert.Equal(t, 6, d.Position())
	assert.Equal(t, 20, d.input.CharLimit)
	assert.Equal(t, "price", d.Label)
	assert.True(t, d.HasValue())
}

func TestDecimalInput_TypingShiftsDigits(t *testing.T) {
	d := newInput(t, fieldConfig("price", "$", "", 2))

	d.Update(runes("5"))
	assert.Equal(t, "$ 0.05", d.Text())
	d.Update(runes("7"))
	assert.Equal(t, "$ 0.57", d.Text())
	d.Update(runes("9"))
	assert.Equal(t, "$ 5.79", d.Text())
	assert.InDelta(t, 5.79, d.Value(), 1e-9)
	assert.Equal(t, 6, d.Position())

	d.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "$ 0.57", d.Text())
	assert.InDelta(t, 0.57, d.Value(), 1e-9)
}

func TestDecimalInput_CursorPinnedBeforeSuffix(t *testing.T) {
	d := newInput(t, fieldConfig("weight", "", "kg", 2))
	assert.Equal(t, "0.00 kg", d.Text())
	assert.Equal(t, 4, d.Position())

	typeKeys(d, "125")
	assert.Equal(t, "1.25 kg", d.Text())
	assert.Equal(t, 4, d.Position())

	d.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 4, d.Position())
	d.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 4, d.Position())
}

func TestDecimalInput_InvalidKeystrokeRestoresText(t *testing.T) {
	d := newInput(t, fieldConfig("price", "$", "", 2))
	typeKeys(d, "12")
	require.Equal(t, "$ 0.12", d.Text())

	d.Update(runes("x"))
	assert.Equal(t, "$ 0.12", d.Text())
	assert.Equal(t, domain.ModeIdle, d.Field().Mode())
	require.Error(t, d.Err())
	assert.ErrorIs(t, d.Err(), domain.ErrParse)
	assert.Contains(t, d.View(40), "invalid input")

	d.Update(runes("3"))
	assert.Equal(t, "$ 1.23", d.Text())
	assert.NoError(t, d.Err())
}

func TestDecimalInput_MaxValueRejectsKeystroke(t *testing.T) {
	cfg := fieldConfig("pct", "", "%", 2)
	cfg.MaxValue = 100
	d := newInput(t, cfg)

	typeKeys(d, "10000")
	assert.Equal(t, "100.00 %", d.Text())
	d.Update(runes("1"))
	assert.Equal(t, "100.00 %", d.Text())
	assert.InDelta(t, 100, d.Value(), 1e-9)
}

func TestDecimalInput_Hint(t *testing.T) {
	cfg := fieldConfig("tip", "", "", 2)
	cfg.Hint = "optional"
	d := newInput(t, cfg)

	assert.Equal(t, "", d.Text())
	assert.Equal(t, "optional", d.input.Placeholder)
	assert.False(t, d.HasValue())

	d.Update(runes("0"))
	assert.Equal(t, "", d.Text())
	assert.False(t, d.HasValue())

	d.Update(runes("4"))
	assert.Equal(t, "0.04", d.Text())
	assert.True(t, d.HasValue())

	d.Reset()
	assert.Equal(t, "", d.Text())
	assert.False(t, d.HasValue())
}

func TestDecimalInput_SetValue(t *testing.T) {
	d := newInput(t, fieldConfig("weight", "", "kg", 2))
	d.SetValue(7)
	assert.Equal(t, "7.00 kg", d.Text())
	assert.Equal(t, 4, d.Position())
	assert.Equal(t, domain.ModeIdle, d.Field().Mode())

	d.Reset()
	assert.Equal(t, "0.00 kg", d.Text())
	assert.Equal(t, 4, d.Position())
}

func TestDecimalInput_IgnoresKeysWhenBlurred(t *testing.T) {
	d := newInput(t, fieldConfig("price", "$", "", 2))
	d.Blur()
	d.Update(runes("5"))
	assert.Equal(t, "$ 0.00", d.Text())
	assert.False(t, d.Focused())
}

func TestNewDecimalInput_Invalid(t *testing.T) {
	cfg := domain.NewFieldConfig()
	cfg.MaxIntegerDigits = -1
	_, err := NewDecimalInput(cfg, nil)
	assert.Error(t, err)
}
