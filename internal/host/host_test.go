package host

import (
	"testing"

	"github.com/rpgo/decimaledit/internal/domain"
	"github.com/rpgo/decimaledit/internal/mask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attach(t *testing.T, cfg domain.FieldConfig) (*Controller, *MemoryHost) {
	t.Helper()
	field, err := mask.NewField(cfg)
	require.NoError(t, err)

	h := NewMemoryHost(field.MaxTextLength())
	c := NewController(field, h, nil)
	h.SetListener(c)
	c.Attach()
	return c, h
}

func config(prefix, suffix string, decimals int) domain.FieldConfig {
	cfg := domain.NewFieldConfig().WithDecimalDigits(decimals)
	cfg.Prefix, cfg.Suffix = prefix, suffix
	return cfg
}

func TestController_AttachWritesZero(t *testing.T) {
	c, h := attach(t, config("", "", 2))

	assert.Equal(t, "0.00", h.Text())
	assert.Equal(t, 4, h.Cursor())
	assert.Equal(t, domain.ModeIdle, c.Field().Mode())
	assert.Equal(t, 1, h.TextEvents())
}

func TestController_AttachWithHintLeavesTextEmpty(t *testing.T) {
	cfg := config("", "", 2)
	cfg.Hint = "amount"
	c, h := attach(t, cfg)

	assert.Equal(t, "", h.Text())
	assert.Equal(t, 0, h.TextEvents())
	assert.False(t, c.Field().HasValue())
}

func TestController_Typing(t *testing.T) {
	c, h := attach(t, config("", "", 2))

	h.Type("5")
	assert.Equal(t, "0.05", h.Text())
	h.Type("7")
	assert.Equal(t, "0.57", h.Text())
	h.Type("9")
	assert.Equal(t, "5.79", h.Text())

	assert.Equal(t, 5.79, c.Field().Value())
	assert.Equal(t, 4, h.Cursor())
	assert.Equal(t, domain.ModeIdle, c.Field().Mode())
	// one notification for attach, then a keystroke and its echo each time
	assert.Equal(t, 7, h.TextEvents())
}

func TestController_TypingBeforeSuffix(t *testing.T) {
	c, h := attach(t, config("R$", "kg", 2))
	assert.Equal(t, "R$ 0.00 kg", h.Text())
	assert.Equal(t, 7, h.Cursor())

	h.Type("1250")
	assert.Equal(t, "R$ 12.50 kg", h.Text())
	assert.Equal(t, 8, h.Cursor())
	assert.Equal(t, 12.5, c.Field().Value())

	h.Backspace()
	assert.Equal(t, "R$ 1.25 kg", h.Text())
	assert.Equal(t, 1.25, c.Field().Value())
}

func TestController_SelectionIsPinned(t *testing.T) {
	_, h := attach(t, config("", "kg", 2))
	h.Type("1250")
	require.Equal(t, "12.50 kg", h.Text())

	for _, sel := range [][2]int{{0, 0}, {2, 6}, {8, 8}, {3, 3}} {
		h.Select(sel[0], sel[1])
		start, end := h.Selection()
		assert.Equal(t, 5, start, "select %v", sel)
		assert.Equal(t, 5, end, "select %v", sel)
	}
}

func TestController_MaxValueRollback(t *testing.T) {
	cfg := config("", "", 2)
	cfg.MaxValue = 100
	c, h := attach(t, cfg)

	c.SetValue(99.99)
	require.Equal(t, "99.99", h.Text())

	h.Type("9")
	assert.Equal(t, "99.99", h.Text())
	assert.Equal(t, 99.99, c.Field().Value())
	assert.True(t, c.LastEdit().Rejected)
	assert.NoError(t, c.LastError())
}

func TestController_HintOnEmpty(t *testing.T) {
	cfg := config("", "", 2)
	cfg.Hint = "0,00"
	c, h := attach(t, cfg)

	h.Type("5")
	assert.Equal(t, "0.05", h.Text())

	h.Backspace()
	assert.Equal(t, "", h.Text())
	assert.Equal(t, 0, h.Cursor())
	assert.False(t, c.Field().HasValue())
	assert.Equal(t, domain.ModeIdle, c.Field().Mode())
}

func TestController_InvalidInputRestoresText(t *testing.T) {
	c, h := attach(t, config("", "", 2))
	h.Type("12")
	require.Equal(t, "0.12", h.Text())

	h.Type("x")
	assert.Equal(t, "0.12", h.Text())
	assert.Equal(t, 0.12, c.Field().Value())
	assert.ErrorIs(t, c.LastError(), domain.ErrParse)
	assert.Equal(t, domain.ModeIdle, c.Field().Mode())

	h.Type("3")
	assert.Equal(t, "1.23", h.Text())
	assert.NoError(t, c.LastError())
}

func TestController_PasteAndClear(t *testing.T) {
	c, h := attach(t, config("$", "", 2))

	h.Paste("$ 1,234.56")
	assert.Equal(t, "$ 1,234.56", h.Text())
	assert.Equal(t, 1234.56, c.Field().Value())

	h.Clear()
	assert.Equal(t, "$ 0.00", h.Text())
	assert.Equal(t, 0.0, c.Field().Value())
}

func TestMemoryHost_LengthLimit(t *testing.T) {
	h := NewMemoryHost(3)
	h.Type("12345")
	assert.Equal(t, "123", h.Text())

	h.ReplaceText("abcdef")
	assert.Equal(t, "abc", h.Text())

	h.Select(0, 3)
	h.Type("z")
	assert.Equal(t, "z", h.Text())
}

func TestMemoryHost_WithoutListener(t *testing.T) {
	h := NewMemoryHost(0)
	h.Type("ab")
	h.Select(5, -1)
	start, end := h.Selection()
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)

	h.Backspace()
	assert.Equal(t, "", h.Text())
	h.Backspace()
	assert.Equal(t, 3, h.TextEvents())
}
