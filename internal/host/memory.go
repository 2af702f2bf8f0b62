package host

// MemoryHost is an in-memory single-line text surface. Like a platform text
// widget it notifies its listener synchronously on every text and selection
// change, whether the change came from the user or from ReplaceText, and it
// applies a length limit to everything written into it.
type MemoryHost struct {
	text      []rune
	selStart  int
	selEnd    int
	maxLength int
	listener  Listener

	textEvents int
}

// NewMemoryHost returns an empty surface. maxLength <= 0 disables the limit.
func NewMemoryHost(maxLength int) *MemoryHost {
	return &MemoryHost{maxLength: maxLength}
}

// SetListener installs the notification target.
func (h *MemoryHost) SetListener(l Listener) { h.listener = l }

// Text returns the current text.
func (h *MemoryHost) Text() string { return string(h.text) }

// Selection returns the selection bounds; they are equal for a caret.
func (h *MemoryHost) Selection() (int, int) { return h.selStart, h.selEnd }

// Cursor returns the caret offset.
func (h *MemoryHost) Cursor() int { return h.selEnd }

// TextEvents counts the text-change notifications delivered so far.
func (h *MemoryHost) TextEvents() int { return h.textEvents }

// ReplaceText implements Host.
func (h *MemoryHost) ReplaceText(text string) {
	h.text = h.limit([]rune(text))
	h.selStart, h.selEnd = len(h.text), len(h.text)
	h.notifyText()
}

// SetCursor implements Host.
func (h *MemoryHost) SetCursor(offset int) {
	h.Select(offset, offset)
}

// Select moves the selection and notifies the listener.
func (h *MemoryHost) Select(start, end int) {
	start, end = h.clamp(start), h.clamp(end)
	if start > end {
		start, end = end, start
	}
	h.selStart, h.selEnd = start, end
	if h.listener != nil {
		h.listener.OnSelectionChanged(start, end, h.Text())
	}
}

// Type inserts s one rune at a time at the selection, as keystrokes.
// Runes that do not fit the length limit are dropped.
func (h *MemoryHost) Type(s string) {
	for _, r := range s {
		h.insert([]rune{r})
	}
}

// Backspace deletes the selection, or the rune before the caret.
func (h *MemoryHost) Backspace() {
	start, end := h.selStart, h.selEnd
	if start == end {
		if start == 0 {
			return
		}
		start--
	}
	h.splice(start, end, nil)
}

// Paste replaces the whole text with s.
func (h *MemoryHost) Paste(s string) {
	h.splice(0, len(h.text), []rune(s))
}

// Clear empties the text.
func (h *MemoryHost) Clear() {
	h.splice(0, len(h.text), nil)
}

func (h *MemoryHost) insert(r []rune) {
	if h.maxLength > 0 {
		avail := h.maxLength - (len(h.text) - (h.selEnd - h.selStart))
		if avail <= 0 {
			return
		}
		if len(r) > avail {
			r = r[:avail]
		}
	}
	h.splice(h.selStart, h.selEnd, r)
}

func (h *MemoryHost) splice(start, end int, r []rune) {
	next := make([]rune, 0, len(h.text)-(end-start)+len(r))
	next = append(next, h.text[:start]...)
	next = append(next, r...)
	next = append(next, h.text[end:]...)
	h.text = h.limit(next)

	caret := h.clamp(start + len(r))
	h.selStart, h.selEnd = caret, caret
	h.notifyText()
}

func (h *MemoryHost) notifyText() {
	h.textEvents++
	if h.listener != nil {
		h.listener.OnTextChanged(h.Text())
	}
}

func (h *MemoryHost) limit(r []rune) []rune {
	if h.maxLength > 0 && len(r) > h.maxLength {
		return r[:h.maxLength]
	}
	return r
}

func (h *MemoryHost) clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(h.text) {
		return len(h.text)
	}
	return offset
}

var _ Host = (*MemoryHost)(nil)
