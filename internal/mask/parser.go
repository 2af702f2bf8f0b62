package mask

import (
	"strings"
	"unicode"

	"github.com/rpgo/decimaledit/internal/domain"
	fixed "github.com/rpgo/decimaledit/pkg/decimal"
)

// currencyMarks are always stripped, whatever the field's prefix and suffix.
const currencyMarks = ",.€"

// Parser turns field text back into a magnitude.
//
// Every keystroke appends a digit to an implicit fixed-point integer: the
// last MaxDecimalDigits digits of the text are the fraction. Prefix and suffix
// are removed rune by rune, not as substrings, so a digit that appears inside
// the prefix or suffix is removed from the payload too.
type Parser struct {
	strip map[rune]struct{}
	scale int
}

// NewParser builds a parser for cfg. sym adds the locale's separators to the
// stripped set.
func NewParser(cfg domain.FieldConfig, sym Symbols) *Parser {
	p := &Parser{
		strip: make(map[rune]struct{}),
		scale: cfg.MaxDecimalDigits,
	}
	for _, r := range cfg.Prefix + cfg.Suffix + currencyMarks {
		p.strip[r] = struct{}{}
	}
	for _, r := range []rune{sym.Group, sym.Decimal} {
		if r != 0 {
			p.strip[r] = struct{}{}
		}
	}
	return p
}

// Payload returns raw with every stripped rune and all whitespace removed.
func (p *Parser) Payload(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		if _, ok := p.strip[r]; ok {
			return -1
		}
		return r
	}, raw)
}

// Parse returns the magnitude held by raw. Empty text is zero.
func (p *Parser) Parse(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	payload := p.Payload(raw)
	d, err := fixed.FromDigits(payload, p.scale)
	if err != nil {
		return 0, &domain.ParseError{Input: raw, Payload: payload, Err: err}
	}
	return fixed.Float64(d), nil
}

// Parse is a one-shot helper around NewParser for callers without a Field.
func Parse(raw string, cfg domain.FieldConfig) (float64, error) {
	cfg = cfg.WithDefaults()
	tag, err := ParseLocale(cfg.Locale)
	if err != nil {
		return 0, err
	}
	return NewParser(cfg, LocaleSymbols(tag)).Parse(raw)
}
