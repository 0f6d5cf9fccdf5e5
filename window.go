package clicktrack

// InputCallback receives the input a window dispatches.
type InputCallback interface {
	// DispatchTouchEvent delivers a pointer event. Returns true if consumed.
	DispatchTouchEvent(ev MotionEvent) bool

	// DispatchKeyEvent delivers a key event. Returns true if consumed.
	DispatchKeyEvent(ev KeyEvent) bool

	// OnWindowFocusChanged reports window focus transitions.
	OnWindowFocusChanged(hasFocus bool)
}

// Window is a host window whose input callback can be replaced.
type Window interface {
	// Callback returns the currently installed input callback. Nil means the
	// host does not expose one.
	Callback() InputCallback

	// SetCallback installs a new input callback.
	SetCallback(cb InputCallback)

	// Content returns the top of the window's view hierarchy.
	Content() View
}
