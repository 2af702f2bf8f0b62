package mask

import "unicode/utf8"

const (
	prefixSpaceSize = 1
	suffixSpaceSize = 1
)

// PinnedPosition is the only offset the cursor may rest at: the end of text,
// or just before " <suffix>" when a suffix is configured.
func (f *Field) PinnedPosition(text string) int {
	n := utf8.RuneCountInString(text)
	if f.cfg.Suffix == "" {
		return n
	}
	pos := n - suffixSpaceSize - utf8.RuneCountInString(f.cfg.Suffix)
	if pos < 0 {
		return 0
	}
	return pos
}

// OnSelectionChanged reports where the selection start..end must move. It
// returns the pinned position and true unless both ends already sit there.
// It is meant to run on every selection event, typed or not.
func (f *Field) OnSelectionChanged(start, end int, text string) (int, bool) {
	pos := f.PinnedPosition(text)
	if start != pos || end != pos {
		f.logger.Debugf("field %s: selection %d..%d pinned to %d", f.name(), start, end, pos)
		return pos, true
	}
	return pos, false
}

// MaxTextLength is the rune limit a host should apply to raw keystrokes.
func (f *Field) MaxTextLength() int {
	n := f.cfg.MaxIntegerDigits + f.cfg.MaxDecimalDigits + 1
	if f.cfg.Prefix != "" {
		n += utf8.RuneCountInString(f.cfg.Prefix) + prefixSpaceSize
	}
	if f.cfg.Suffix != "" {
		n += utf8.RuneCountInString(f.cfg.Suffix) + suffixSpaceSize
	}
	return n
}
