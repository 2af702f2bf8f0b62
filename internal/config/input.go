package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/decimaledit/internal/domain"
	"github.com/rpgo/decimaledit/internal/mask"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of field and script files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFieldSet loads a set of field definitions from a YAML file
func (ip *InputParser) LoadFieldSet(filename string) (*domain.FieldSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.ParseFieldSet(data)
}

// ParseFieldSet decodes, defaults and validates a field set
func (ip *InputParser) ParseFieldSet(data []byte) (*domain.FieldSet, error) {
	var set domain.FieldSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i := range set.Fields {
		set.Fields[i] = set.Fields[i].WithDefaults()
	}

	if err := ip.ValidateFieldSet(&set); err != nil {
		return nil, fmt.Errorf("field set validation failed: %w", err)
	}

	return &set, nil
}

// LoadScript loads a replay script from a YAML file
func (ip *InputParser) LoadScript(filename string) (*domain.Script, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.ParseScript(data)
}

// ParseScript decodes, defaults and validates a replay script
func (ip *InputParser) ParseScript(data []byte) (*domain.Script, error) {
	var script domain.Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	script.Field = script.Field.WithDefaults()

	if err := ip.ValidateScript(&script); err != nil {
		return nil, fmt.Errorf("script validation failed: %w", err)
	}

	return &script, nil
}

// ValidateFieldSet validates every field and requires unique names
func (ip *InputParser) ValidateFieldSet(set *domain.FieldSet) error {
	if len(set.Fields) == 0 {
		return fmt.Errorf("no fields provided")
	}

	seen := make(map[string]bool, len(set.Fields))
	for i, field := range set.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return fmt.Errorf("field %d: name is required", i)
		}
		if seen[name] {
			return fmt.Errorf("field %d: duplicate name %q", i, name)
		}
		seen[name] = true

		if err := ip.ValidateField(&field); err != nil {
			return fmt.Errorf("field %s validation failed: %w", name, err)
		}
	}

	return nil
}

// ValidateField validates a single field definition
func (ip *InputParser) ValidateField(field *domain.FieldConfig) error {
	if err := field.Validate(); err != nil {
		return err
	}
	if _, err := mask.ParseLocale(field.Locale); err != nil {
		return err
	}
	if field.Hint != "" && strings.TrimSpace(field.Hint) == "" {
		return fmt.Errorf("hint cannot be blank")
	}
	return nil
}

// ValidateScript validates the script's field and each event
func (ip *InputParser) ValidateScript(script *domain.Script) error {
	if err := ip.ValidateField(&script.Field); err != nil {
		return fmt.Errorf("field validation failed: %w", err)
	}

	if len(script.Events) == 0 {
		return fmt.Errorf("no events provided")
	}

	for i, event := range script.Events {
		if err := ip.validateEvent(&event); err != nil {
			return fmt.Errorf("event %d validation failed: %w", i, err)
		}
	}

	return nil
}

// validateEvent validates a single script event
func (ip *InputParser) validateEvent(event *domain.Event) error {
	switch event.Type {
	case domain.EventKeys:
		if event.Text == "" {
			return fmt.Errorf("type event requires text")
		}
	case domain.EventBackspace:
		if event.Count < 0 {
			return fmt.Errorf("backspace count cannot be negative")
		}
	case domain.EventSelect:
		if event.Start < 0 || event.End < 0 {
			return fmt.Errorf("selection bounds cannot be negative")
		}
	case domain.EventPaste, domain.EventSet, domain.EventClear:
	default:
		return fmt.Errorf("unknown event type %q", event.Type)
	}
	return nil
}
