package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rpgo/decimaledit/internal/domain"
	"github.com/rpgo/decimaledit/internal/mask"
)

// Form is a vertical list of decimal inputs with one focused at a time.
type Form struct {
	Title  string
	KeyMap KeyMap

	inputs      []*DecimalInput
	activeIndex int
	submitted   bool
	cancelled   bool
	width       int
	help        help.Model
}

// NewForm builds one input per field in set.
func NewForm(set domain.FieldSet, logger mask.Logger) (*Form, error) {
	if len(set.Fields) == 0 {
		return nil, fmt.Errorf("no fields provided")
	}
	f := &Form{
		Title:  set.Title,
		KeyMap: DefaultKeyMap,
		help:   help.New(),
	}
	for i, cfg := range set.Fields {
		in, err := NewDecimalInput(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("field %d (%s): %w", i, cfg.Name, err)
		}
		f.inputs = append(f.inputs, in)
	}
	return f, nil
}

func (f *Form) Init() tea.Cmd {
	return f.inputs[f.activeIndex].Focus()
}

func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		f.help.Width = msg.Width
		return f, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, f.KeyMap.Cancel):
			f.cancelled = true
			return f, tea.Quit
		case key.Matches(msg, f.KeyMap.Submit):
			f.submitted = true
			return f, tea.Quit
		case key.Matches(msg, f.KeyMap.Next):
			return f, f.changeActiveIndex(1)
		case key.Matches(msg, f.KeyMap.Prev):
			return f, f.changeActiveIndex(-1)
		}
	}

	return f, f.inputs[f.activeIndex].Update(msg)
}

func (f *Form) View() string {
	rows := make([]string, 0, len(f.inputs)+2)
	if f.Title != "" {
		rows = append(rows, titleStyle.Render(f.Title))
	}
	for _, in := range f.inputs {
		rows = append(rows, in.View(f.width))
	}
	rows = append(rows, helpStyle.Render(f.help.View(f.KeyMap)))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (f *Form) changeActiveIndex(delta int) tea.Cmd {
	n := len(f.inputs)
	f.inputs[f.activeIndex].Blur()
	f.activeIndex = ((f.activeIndex+delta)%n + n) % n
	return f.inputs[f.activeIndex].Focus()
}

// Active returns the focused input.
func (f *Form) Active() *DecimalInput { return f.inputs[f.activeIndex] }

// Inputs returns the inputs in display order.
func (f *Form) Inputs() []*DecimalInput { return f.inputs }

func (f *Form) Submitted() bool { return f.submitted }

func (f *Form) Cancelled() bool { return f.cancelled }

// Values maps each field name to its value. Fields showing their hint hold
// no value and are left out.
func (f *Form) Values() map[string]float64 {
	values := make(map[string]float64, len(f.inputs))
	for i, in := range f.inputs {
		if !in.HasValue() {
			continue
		}
		name := in.field.Config().Name
		if name == "" {
			name = fmt.Sprintf("field%d", i)
		}
		values[name] = in.Value()
	}
	return values
}

// Form implements tea.Model
var _ tea.Model = (*Form)(nil)
