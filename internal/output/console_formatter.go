package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/decimaledit/internal/domain"
)

// ConsoleFormatter renders a transcript as a step table for terminals.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(tr *domain.Transcript) ([]byte, error) {
	if tr == nil {
		return nil, fmt.Errorf("nil transcript")
	}
	var buf bytes.Buffer
	title := "DECIMAL FIELD REPLAY"
	if tr.Name != "" {
		title = fmt.Sprintf("%s: %s", title, tr.Name)
	}
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, "================================")
	f := tr.Field
	fmt.Fprintf(&buf, "Prefix: %s  Suffix: %s  Locale: %s\n", FormatText(f.Prefix), FormatText(f.Suffix), f.Locale)
	fmt.Fprintf(&buf, "Digits: %d.%d  Max: %s  Max length: %d\n", f.MaxIntegerDigits, f.MaxDecimalDigits, FormatMaxValue(f.MaxValue), tr.MaxTextLength)
	if f.HasHint() {
		fmt.Fprintf(&buf, "Hint: %s\n", FormatText(f.Hint))
	}
	fmt.Fprintf(&buf, "Initial: %s\n", FormatText(tr.InitialText))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "%-4s %-24s %-24s %-6s %-20s %s\n", "#", "Event", "Text", "Caret", "Value", "Note")
	for _, s := range tr.Steps {
		value := FormatValue(s.Value)
		if !s.Present {
			value = "(empty)"
		}
		note := ""
		if s.Rejected {
			note = "rejected"
		}
		fmt.Fprintf(&buf, "%-4d %-24s %-24s %-6d %-20s %s\n", s.Index, FormatEvent(s.Event), FormatText(s.Text), s.Cursor, value, note)
	}
	if last, ok := tr.Final(); ok {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Final: %s = %s\n", FormatText(last.Text), FormatValue(last.Value))
	}
	return buf.Bytes(), nil
}
