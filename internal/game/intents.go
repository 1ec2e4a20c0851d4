package game

import "fmt"

// IntentKind enumerates the discrete inputs the front-end may enqueue.
type IntentKind int

const (
	IntentSelectField IntentKind = iota
	IntentAdjustField
	IntentTextInput
	IntentBackspace
	IntentConfirm
	IntentCancel
	IntentClickAt
	IntentQuit
)

func (k IntentKind) String() string {
	switch k {
	case IntentSelectField:
		return "select_field"
	case IntentAdjustField:
		return "adjust_field"
	case IntentTextInput:
		return "text_input"
	case IntentBackspace:
		return "backspace"
	case IntentConfirm:
		return "confirm"
	case IntentCancel:
		return "cancel"
	case IntentClickAt:
		return "click"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent carries no game logic; the controller decides what it means.
type Intent struct {
	Kind IntentKind
	Dir  int  // -1 up/left, +1 down/right
	Char rune // TextInput
	X, Y int  // ClickAt, screen pixels
}

func (in Intent) String() string {
	switch in.Kind {
	case IntentSelectField, IntentAdjustField:
		return fmt.Sprintf("%s(%+d)", in.Kind, in.Dir)
	case IntentTextInput:
		return fmt.Sprintf("%s(%q)", in.Kind, in.Char)
	case IntentClickAt:
		return fmt.Sprintf("%s(%d,%d)", in.Kind, in.X, in.Y)
	default:
		return in.Kind.String()
	}
}

func SelectField(dir int) Intent { return Intent{Kind: IntentSelectField, Dir: sign(dir)} }
func AdjustField(dir int) Intent { return Intent{Kind: IntentAdjustField, Dir: sign(dir)} }
func TextInput(r rune) Intent    { return Intent{Kind: IntentTextInput, Char: r} }
func Backspace() Intent          { return Intent{Kind: IntentBackspace} }
func Confirm() Intent            { return Intent{Kind: IntentConfirm} }
func Cancel() Intent             { return Intent{Kind: IntentCancel} }
func ClickAt(x, y int) Intent    { return Intent{Kind: IntentClickAt, X: x, Y: y} }
func Quit() Intent               { return Intent{Kind: IntentQuit} }

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// Cue is a fire-and-forget audio signal for the front-end.
type Cue int

const (
	CueClick Cue = iota
	CueError
)

func (c Cue) String() string {
	if c == CueError {
		return "error"
	}
	return "click"
}
