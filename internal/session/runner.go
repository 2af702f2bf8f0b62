// Package session replays scripted host interactions against a field.
package session

import (
	"context"
	"fmt"

	"github.com/rpgo/decimaledit/internal/domain"
	"github.com/rpgo/decimaledit/internal/host"
	"github.com/rpgo/decimaledit/internal/mask"
)

// Runner replays scripts through a Controller bound to a MemoryHost.
type Runner struct {
	Logger mask.Logger
}

// NewRunner creates a runner with a no-op logger.
func NewRunner() *Runner {
	return &Runner{Logger: mask.NopLogger{}}
}

// SetLogger sets the runner's logger. If nil is provided, a no-op logger is used.
func (r *Runner) SetLogger(l mask.Logger) {
	if l == nil {
		r.Logger = mask.NopLogger{}
		return
	}
	r.Logger = l
}

// Run plays every event of script and records the host state after each one.
// It stops early when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, script *domain.Script) (*domain.Transcript, error) {
	field, err := mask.NewField(script.Field, mask.WithLogger(r.Logger))
	if err != nil {
		return nil, err
	}

	h := host.NewMemoryHost(field.MaxTextLength())
	ctrl := host.NewController(field, h, r.Logger)
	h.SetListener(ctrl)
	ctrl.Attach()

	tr := &domain.Transcript{
		Name:          script.Name,
		Field:         field.Config(),
		MaxTextLength: field.MaxTextLength(),
		InitialText:   h.Text(),
		Steps:         make([]domain.Step, 0, len(script.Events)),
	}

	for i, ev := range script.Events {
		if err := ctx.Err(); err != nil {
			return tr, fmt.Errorf("replay interrupted at event %d: %w", i, err)
		}

		rejected, err := r.apply(ctrl, h, ev)
		if err != nil {
			return tr, fmt.Errorf("event %d: %w", i, err)
		}

		tr.Steps = append(tr.Steps, domain.Step{
			Index:    i,
			Event:    ev,
			Text:     h.Text(),
			Cursor:   h.Cursor(),
			Value:    field.Value(),
			Present:  field.HasValue(),
			Rejected: rejected,
		})
		r.Logger.Debugf("event %d %s: %q cursor=%d", i, ev.Type, h.Text(), h.Cursor())
	}

	return tr, nil
}

// apply performs one event and reports whether any keystroke in it was
// rolled back by the max value clamp.
func (r *Runner) apply(ctrl *host.Controller, h *host.MemoryHost, ev domain.Event) (bool, error) {
	rejected := false
	seen := h.TextEvents()
	track := func() {
		// a keystroke dropped by the length limit leaves LastEdit stale
		if h.TextEvents() != seen && ctrl.LastEdit().Rejected {
			rejected = true
		}
		seen = h.TextEvents()
	}

	switch ev.Type {
	case domain.EventKeys:
		for _, ch := range ev.Text {
			h.Type(string(ch))
			track()
		}
	case domain.EventBackspace:
		n := ev.Count
		if n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			h.Backspace()
			track()
		}
	case domain.EventSelect:
		h.Select(ev.Start, ev.End)
	case domain.EventPaste:
		h.Paste(ev.Text)
		track()
	case domain.EventSet:
		ctrl.SetValue(ev.Value)
	case domain.EventClear:
		h.Clear()
	default:
		return false, fmt.Errorf("unknown event type %q", ev.Type)
	}
	return rejected, nil
}
