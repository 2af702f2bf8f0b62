package output

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rpgo/decimaledit/internal/domain"
	"github.com/shopspring/decimal"
)

// FormatValue renders a field value in its shortest exact decimal form.
func FormatValue(v float64) string { return decimal.NewFromFloat(v).String() }

// FormatMaxValue renders a configured ceiling, using "max" for the unbounded default.
func FormatMaxValue(v float64) string {
	if v == math.MaxFloat64 || math.IsInf(v, 1) {
		return "max"
	}
	return FormatValue(v)
}

// FormatText quotes host text so leading and trailing spaces stay visible.
func FormatText(s string) string { return strconv.Quote(s) }

// FormatEvent gives a one-line description of a replay event.
func FormatEvent(e domain.Event) string {
	switch e.Type {
	case domain.EventKeys, domain.EventPaste:
		return fmt.Sprintf("%s %s", e.Type, FormatText(e.Text))
	case domain.EventBackspace:
		n := e.Count
		if n == 0 {
			n = 1
		}
		return fmt.Sprintf("%s x%d", e.Type, n)
	case domain.EventSelect:
		return fmt.Sprintf("%s %d..%d", e.Type, e.Start, e.End)
	case domain.EventSet:
		return fmt.Sprintf("%s %s", e.Type, FormatValue(e.Value))
	default:
		return string(e.Type)
	}
}

func intToString(v int) string { return strconv.Itoa(v) }

func boolToString(v bool) string { return strconv.FormatBool(v) }
