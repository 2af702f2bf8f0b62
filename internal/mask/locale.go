package mask

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// sampleNumber has enough integer digits to show both the primary and the
// secondary grouping of every locale.
const sampleNumber = 1234567890.5

// Symbols are the grouping and decimal separators of a locale. PrimaryGroup is
// the size of the group next to the decimal separator and SecondaryGroup the
// size of every group before it; both are 0 when the locale does not group.
type Symbols struct {
	Group          rune
	Decimal        rune
	PrimaryGroup   int
	SecondaryGroup int
}

// ParseLocale resolves a BCP 47 tag. An empty string selects English.
func ParseLocale(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return language.English, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", s, err)
	}
	return tag, nil
}

// LocaleSymbols formats a sample number for tag and reads the separators and
// group sizes back. Locales that render it without a grouping separator
// report Group as 0.
func LocaleSymbols(tag language.Tag) Symbols {
	p := message.NewPrinter(tag)
	out := []rune(p.Sprint(number.Decimal(sampleNumber, number.Scale(1))))

	// runs[i] counts the digits written before seps[i].
	var seps []rune
	var runs []int
	n := 0
	for _, r := range out {
		if unicode.IsDigit(r) {
			n++
			continue
		}
		seps = append(seps, r)
		runs = append(runs, n)
		n = 0
	}

	s := Symbols{Group: ',', Decimal: '.', PrimaryGroup: 3, SecondaryGroup: 3}
	switch len(seps) {
	case 0:
	case 1:
		s = Symbols{Decimal: seps[0]}
	default:
		s.Group, s.Decimal = seps[0], seps[len(seps)-1]
		s.PrimaryGroup = runs[len(runs)-1]
		s.SecondaryGroup = s.PrimaryGroup
		if len(runs) > 2 {
			s.SecondaryGroup = runs[len(runs)-2]
		}
	}
	return s
}

// group inserts sym.Group into a run of integer digits.
func group(digits string, sym Symbols) string {
	size := sym.PrimaryGroup
	if sym.Group == 0 || size <= 0 || len(digits) <= size {
		return digits
	}
	secondary := sym.SecondaryGroup
	if secondary <= 0 {
		secondary = size
	}

	var parts []string
	end := len(digits)
	for end > size {
		parts = append(parts, digits[end-size:end])
		end -= size
		size = secondary
	}
	parts = append(parts, digits[:end])

	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(parts[i])
		if i > 0 {
			b.WriteRune(sym.Group)
		}
	}
	return b.String()
}
