package clicktrack

// ClickAction is the click capability of a semantics configuration.
type ClickAction struct {
	// Label is the accessibility label of the action. May be empty.
	Label string
}

// Semantics is a snapshot of a node's declared interaction metadata.
// Absent capabilities are nil.
type Semantics struct {
	OnClick            *ClickAction
	ContentDescription []string
}

// HasClick reports whether a click action is declared.
func (s Semantics) HasClick() bool {
	return s.OnClick != nil
}

// ClickLabel returns the click action's label when it is present and non-empty.
func (s Semantics) ClickLabel() (string, bool) {
	if s.OnClick == nil || s.OnClick.Label == "" {
		return "", false
	}
	return s.OnClick.Label, true
}

// Description returns the first content description entry.
func (s Semantics) Description() (string, bool) {
	if len(s.ContentDescription) == 0 {
		return "", false
	}
	return s.ContentDescription[0], true
}

// DisplayName returns the click label, falling back to the first content
// description, falling back to "".
func (s Semantics) DisplayName() string {
	if label, ok := s.ClickLabel(); ok {
		return label
	}
	if desc, ok := s.Description(); ok {
		return desc
	}
	return ""
}

// SemanticsModifier attaches a semantics configuration to a node.
type SemanticsModifier struct {
	Config Semantics
}

// Semantics implements Modifier.
func (m SemanticsModifier) Semantics() (Semantics, bool) {
	return m.Config, true
}

// Clickable returns a modifier declaring a click action with the given label.
func Clickable(label string) SemanticsModifier {
	return SemanticsModifier{Config: Semantics{OnClick: &ClickAction{Label: label}}}
}

// Described returns a modifier declaring only content descriptions.
func Described(desc ...string) SemanticsModifier {
	return SemanticsModifier{Config: Semantics{ContentDescription: desc}}
}

// ClickableWithDescription returns a modifier declaring an unlabeled click
// action together with content descriptions.
func ClickableWithDescription(desc ...string) SemanticsModifier {
	return SemanticsModifier{Config: Semantics{OnClick: &ClickAction{}, ContentDescription: desc}}
}

// clickSemantics returns the first semantics configuration attached to n that
// declares a click action.
func clickSemantics(n Node) (Semantics, bool) {
	for _, m := range n.Modifiers() {
		if m == nil {
			continue
		}
		if s, ok := m.Semantics(); ok && s.HasClick() {
			return s, true
		}
	}
	return Semantics{}, false
}
