package clicktrack

// inputHook wraps a window's original input callback. Everything is forwarded
// to next; pointer-ups additionally go to the generator while the hook is
// armed.
type inputHook struct {
	next  InputCallback
	gen   *Generator
	armed bool
}

var _ InputCallback = (*inputHook)(nil)

func newInputHook(next InputCallback, gen *Generator) *inputHook {
	return &inputHook{next: next, gen: gen, armed: true}
}

// DispatchTouchEvent reports pointer-ups, then forwards the event unchanged.
func (h *inputHook) DispatchTouchEvent(ev MotionEvent) bool {
	if h.armed && ev.IsPointerUp() {
		h.gen.GenerateClick(ev)
	}
	return h.next.DispatchTouchEvent(ev)
}

// DispatchKeyEvent forwards the event unchanged.
func (h *inputHook) DispatchKeyEvent(ev KeyEvent) bool {
	return h.next.DispatchKeyEvent(ev)
}

// OnWindowFocusChanged forwards the notification unchanged.
func (h *inputHook) OnWindowFocusChanged(hasFocus bool) {
	h.next.OnWindowFocusChanged(hasFocus)
}

// disarm turns the hook into a pure pass-through. Used when the hook cannot
// be unlinked because another wrapper sits on top of it.
func (h *inputHook) disarm() {
	h.armed = false
}
