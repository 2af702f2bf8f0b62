package config

import (
	"fmt"
	"strings"

	"github.com/rpgo/decimaledit/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable that can override a
// field flag, e.g. DECIMALEDIT_MAX_VALUE.
const EnvPrefix = "decimaledit"

// Flag names shared by the CLI commands.
const (
	FlagName             = "name"
	FlagPrefix           = "prefix"
	FlagSuffix           = "suffix"
	FlagMaxValue         = "max-value"
	FlagMaxIntegerDigits = "max-integer-digits"
	FlagMaxDecimalDigits = "max-decimal-digits"
	FlagHint             = "hint"
	FlagLocale           = "locale"
)

// AddFieldFlags declares the field configuration flags on cmd as persistent
// flags, so every subcommand inherits them.
func AddFieldFlags(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.String(FlagName, "", "field name used in logs and transcripts")
	fs.String(FlagPrefix, "", "text rendered before the number, e.g. \"$\"")
	fs.String(FlagSuffix, "", "text rendered after the number, e.g. \"kg\"")
	fs.String(FlagMaxValue, "max", "largest accepted value, or \"max\"")
	fs.Int(FlagMaxIntegerDigits, domain.DefaultMaxIntegerDigits, "integer digits kept when rendering")
	fs.Int(FlagMaxDecimalDigits, domain.DefaultMaxDecimalDigits, "fraction digits typed and rendered")
	fs.String(FlagHint, "", "placeholder shown instead of zero")
	fs.String(FlagLocale, domain.DefaultLocale, "BCP 47 locale for grouping and decimal symbols")
}

// LoadFieldConfig resolves a field configuration from cmd's flags, falling
// back to DECIMALEDIT_* environment variables and then to flag defaults.
func LoadFieldConfig(cmd *cobra.Command) (domain.FieldConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return domain.FieldConfig{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	maxValue, err := domain.ParseMaxValue(v.GetString(FlagMaxValue))
	if err != nil {
		return domain.FieldConfig{}, fmt.Errorf("invalid --%s: %w", FlagMaxValue, err)
	}

	// every limit has a flag default, so whatever viper resolved is explicit
	cfg := domain.FieldConfig{
		Name:   v.GetString(FlagName),
		Prefix: v.GetString(FlagPrefix),
		Suffix: v.GetString(FlagSuffix),
		Hint:   v.GetString(FlagHint),
		Locale: v.GetString(FlagLocale),
	}.WithMaxValue(maxValue).
		WithIntegerDigits(v.GetInt(FlagMaxIntegerDigits)).
		WithDecimalDigits(v.GetInt(FlagMaxDecimalDigits)).
		WithDefaults()

	if err := NewInputParser().ValidateField(&cfg); err != nil {
		return domain.FieldConfig{}, fmt.Errorf("invalid field flags: %w", err)
	}
	return cfg, nil
}
