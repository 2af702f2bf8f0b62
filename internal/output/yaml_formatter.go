package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/decimaledit/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the transcript as YAML, the same shape replay scripts use.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(tr *domain.Transcript) ([]byte, error) {
	if tr == nil {
		return nil, fmt.Errorf("nil transcript")
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(tr); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
