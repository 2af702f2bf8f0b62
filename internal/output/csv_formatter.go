package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/rpgo/decimaledit/internal/domain"
)

// CSVFormatter writes one row per replay step.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(tr *domain.Transcript) ([]byte, error) {
	if tr == nil {
		return nil, fmt.Errorf("nil transcript")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Index", "Event", "Text", "Cursor", "Value", "Present", "Rejected"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, s := range tr.Steps {
		row := []string{
			intToString(s.Index),
			FormatEvent(s.Event),
			s.Text,
			intToString(s.Cursor),
			FormatValue(s.Value),
			boolToString(s.Present),
			boolToString(s.Rejected),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
