package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/decimaledit/internal/config"
	"github.com/rpgo/decimaledit/internal/domain"
	"github.com/rpgo/decimaledit/internal/mask"
	"github.com/rpgo/decimaledit/internal/output"
	"github.com/rpgo/decimaledit/internal/session"
	"github.com/rpgo/decimaledit/internal/tui"
	fixed "github.com/rpgo/decimaledit/pkg/decimal"
)

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <value>",
		Short: "Render a value the way a field displays it",
		Long: `Render a value with the configured prefix, suffix, grouping and
digit limits. Use -- before negative values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFieldConfig(cmd)
			if err != nil {
				return err
			}
			d, err := decimal.NewFromString(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			field, err := mask.NewField(cfg, mask.WithLogger(loggerFor(cmd)))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), field.Format(fixed.Float64(d)))
			return nil
		},
	}
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Read the magnitude a field would hold for some text",
		Long: `Strip the prefix, suffix, separators and whitespace from text and read
the remaining digits as a fixed-point number. Signs are not read.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFieldConfig(cmd)
			if err != nil {
				return err
			}
			field, err := mask.NewField(cfg, mask.WithLogger(loggerFor(cmd)))
			if err != nil {
				return err
			}
			v, err := field.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output.FormatValue(v))
			return nil
		},
	}
}

func newLimitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "limits",
		Short: "Show the text length limit and cursor position of a field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFieldConfig(cmd)
			if err != nil {
				return err
			}
			field, err := mask.NewField(cfg, mask.WithLogger(loggerFor(cmd)))
			if err != nil {
				return err
			}
			zero := field.Format(0)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "max text length: %d\n", field.MaxTextLength())
			fmt.Fprintf(out, "zero rendering:  %s\n", output.FormatText(zero))
			fmt.Fprintf(out, "pinned cursor:   %d\n", field.PinnedPosition(zero))
			fmt.Fprintf(out, "max value:       %s\n", output.FormatMaxValue(cfg.MaxValue))
			return nil
		},
	}
}

func newReplayCmd() *cobra.Command {
	var (
		format string
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Play a scripted editing session against a field",
		Long: `Load a YAML script holding a field configuration and a list of events
(type, backspace, select, paste, set, clear), play them against an in-memory
text host and print the text, cursor and value after each event.

The field flags are ignored; the script carries its own field.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := config.NewInputParser().LoadScript(args[0])
			if err != nil {
				return err
			}
			runner := session.NewRunner()
			runner.SetLogger(loggerFor(cmd))
			tr, err := runner.Run(cmd.Context(), script)
			if err != nil {
				return err
			}
			f := output.GetFormatterByName(format)
			if outDir == "" || f == nil {
				return output.GenerateReport(cmd.OutOrStdout(), tr, format)
			}
			name, err := output.WriteFormatted(f, tr, outDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "transcript written to %s\n", name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format: "+strings.Join(output.AvailableFormatterNames(), ", "))
	cmd.Flags().StringVarP(&outDir, "output-dir", "o", "", "write a timestamped file to this directory instead of stdout")
	return cmd
}

func newTUICmd() *cobra.Command {
	var fieldsFile string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Edit one or more decimal fields interactively",
		Long: `Open a terminal form. Without --fields a single field is built from
the field flags. Tab and shift+tab move between fields, enter submits and
prints the values, esc cancels.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadFieldSet(cmd, fieldsFile)
			if err != nil {
				return err
			}
			form, err := tui.NewForm(*set, loggerFor(cmd))
			if err != nil {
				return err
			}
			p := tea.NewProgram(form, tea.WithContext(cmd.Context()), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.ErrOrStderr()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			if !form.Submitted() {
				return nil
			}
			for _, in := range form.Inputs() {
				value := "(empty)"
				if in.HasValue() {
					value = output.FormatValue(in.Value())
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", in.Label, value)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&fieldsFile, "fields", "", "YAML file describing the fields to edit")
	return cmd
}

// loadFieldSet reads a field set file, or builds a one-field set from flags.
func loadFieldSet(cmd *cobra.Command, path string) (*domain.FieldSet, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("fields file: %w", err)
		}
		return config.NewInputParser().LoadFieldSet(path)
	}
	cfg, err := config.LoadFieldConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cfg.Name == "" {
		cfg.Name = "value"
	}
	return &domain.FieldSet{Fields: []domain.FieldConfig{cfg}}, nil
}
