package keymap

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key spec that triggers this binding.
	// Formats: "Ctrl+S", "<C-s>", "Enter", "Up", "Ctrl+End"
	Keys string

	// Action is the command to execute, e.g. "file.save" or "cursor.moveUp".
	Action string

	// Description provides documentation for the binding.
	Description string
}

// NewBinding creates a new binding with the given keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{
		Keys:   keys,
		Action: action,
	}
}
