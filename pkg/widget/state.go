package widget

import "fmt"

// VisualState is the discrete interaction state of a widget. Transitions
// between states select the target property values a widget animates
// toward; the state machine itself lives in the widget, not in the
// animation manager.
type VisualState int

const (
	// StateNormal is the resting state.
	StateNormal VisualState = iota
	// StateHover means the pointer is over the widget.
	StateHover
	// StatePressed means the widget is being pressed.
	StatePressed
	// StateDisabled means the widget ignores interaction.
	StateDisabled
)

func (s VisualState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateHover:
		return "hover"
	case StatePressed:
		return "pressed"
	case StateDisabled:
		return "disabled"
	default:
		return fmt.Sprintf("VisualState(%d)", int(s))
	}
}
