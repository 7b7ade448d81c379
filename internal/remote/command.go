package remote

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is returned for a command with an unrecognised action.
var ErrUnknownAction = errors.New("unknown action")

// Action names a remote trigger.
type Action string

const (
	ActionToggleExploded Action = "toggle_exploded"
	ActionResetView      Action = "reset_view"
	ActionTheme          Action = "theme"
)

// Command is a message sent by a remote client.
type Command struct {
	Action Action `json:"action"`
	Theme  string `json:"theme,omitempty"`
}

// Triggers are the viewer entry points a command may call.
type Triggers interface {
	OnToggleExploded()
	OnResetView()
	OnThemeSelect(id string)
}

// Apply runs the command against t.
func (c Command) Apply(t Triggers) error {
	switch c.Action {
	case ActionToggleExploded:
		t.OnToggleExploded()
	case ActionResetView:
		t.OnResetView()
	case ActionTheme:
		if c.Theme == "" {
			return fmt.Errorf("theme command without theme id")
		}
		t.OnThemeSelect(c.Theme)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, c.Action)
	}
	return nil
}
