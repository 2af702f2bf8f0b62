package output

import (
	"encoding/json"
	"fmt"

	"github.com/rpgo/decimaledit/internal/domain"
)

// JSONFormatter serializes the transcript as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(tr *domain.Transcript) ([]byte, error) {
	if tr == nil {
		return nil, fmt.Errorf("nil transcript")
	}
	return json.MarshalIndent(tr, "", "  ")
}
