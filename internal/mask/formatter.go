package mask

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/rpgo/decimaledit/internal/domain"
	fixed "github.com/rpgo/decimaledit/pkg/decimal"
)

// Formatter renders magnitudes as grouped decimal text with a fixed number of
// fraction digits, an optional "<prefix> " and an optional " <suffix>".
type Formatter struct {
	printer *message.Printer
	sym     Symbols
	cfg     domain.FieldConfig
}

// NewFormatter builds a formatter for cfg in the given locale.
func NewFormatter(cfg domain.FieldConfig, tag language.Tag) *Formatter {
	return &Formatter{
		printer: message.NewPrinter(tag),
		sym:     LocaleSymbols(tag),
		cfg:     cfg,
	}
}

// Format renders v. Only the MaxIntegerDigits least significant integer
// digits are kept. A negative sign goes after the prefix.
func (f *Formatter) Format(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	var b strings.Builder
	if f.cfg.Prefix != "" {
		b.WriteString(f.cfg.Prefix)
		b.WriteByte(' ')
	}
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(f.digits(v))
	if f.cfg.Suffix != "" {
		b.WriteByte(' ')
		b.WriteString(f.cfg.Suffix)
	}
	return b.String()
}

// digits renders a non-negative v from its shortest decimal form, so a value
// never shows digits beyond the ones that identify it as a float64.
func (f *Formatter) digits(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return f.printer.Sprint(number.Decimal(v))
	}

	scale := f.cfg.MaxDecimalDigits
	if scale < 0 {
		scale = 0
	}
	d := fixed.FromFloat(v, scale)
	if f.cfg.MaxIntegerDigits > 0 {
		d = d.Mod(decimal.New(1, int32(f.cfg.MaxIntegerDigits)))
	}

	intPart, frac, _ := strings.Cut(d.StringFixed(int32(scale)), ".")
	out := group(intPart, f.sym)
	if scale > 0 {
		out += string(f.sym.Decimal) + frac
	}
	return out
}

// Format is a one-shot helper around NewFormatter for callers without a Field.
func Format(v float64, cfg domain.FieldConfig) (string, error) {
	cfg = cfg.WithDefaults()
	tag, err := ParseLocale(cfg.Locale)
	if err != nil {
		return "", err
	}
	return NewFormatter(cfg, tag).Format(v), nil
}
