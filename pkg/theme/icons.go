package theme

// Kind is the flavor of a status message.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
	KindHelp    Kind = "help"
)

// Kinds lists the message kinds.
var Kinds = []Kind{KindSuccess, KindError, KindWarning, KindInfo, KindHelp}

var icons = map[Kind][2]string{
	KindSuccess: {"✓", "+"},
	KindError:   {"✗", "x"},
	KindWarning: {"⚠", "!"},
	KindInfo:    {"ℹ", "i"},
	KindHelp:    {"?", "?"},
}

// Role returns the color role of a message kind.
func (k Kind) Role() Role {
	switch k {
	case KindSuccess:
		return Success
	case KindError:
		return Error
	case KindWarning:
		return Warning
	case KindInfo:
		return Info
	case KindHelp:
		return Help
	}
	return None
}

// Icon returns the unstyled glyph for kind, or "" for an unknown kind.
func (t Theme) Icon(kind Kind) string {
	pair, ok := icons[kind]
	if !ok {
		return ""
	}
	if t.Unicode() {
		return pair[0]
	}
	return pair[1]
}

// Symbol returns the icon for kind painted with its role.
func (t Theme) Symbol(kind Kind) string {
	return t.Paint(kind.Role(), t.Icon(kind))
}
