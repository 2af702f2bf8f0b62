package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/decimaledit/internal/domain"
)

// GenerateReport formats tr with the named formatter and writes it to w.
func GenerateReport(w io.Writer, tr *domain.Transcript, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(tr)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}
