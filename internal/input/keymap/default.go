package keymap

// Editor actions.
const (
	ActionSave           = "file.save"
	ActionQuit           = "app.quit"
	ActionSplitLine      = "edit.splitLine"
	ActionDeleteBackward = "edit.deleteBackward"
	ActionMoveUp         = "cursor.moveUp"
	ActionMoveDown       = "cursor.moveDown"
	ActionMoveLeft       = "cursor.moveLeft"
	ActionMoveRight      = "cursor.moveRight"
	ActionMoveLineStart  = "cursor.moveLineStart"
	ActionMoveLineEnd    = "cursor.moveLineEnd"
	ActionMoveFirstLine  = "cursor.moveFirstLine"
	ActionMoveLastLine   = "cursor.moveLastLine"
)

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:   "default",
		Source: "default",
		Bindings: []Binding{
			// Movement
			{Keys: "Up", Action: ActionMoveUp, Description: "Move up"},
			{Keys: "Down", Action: ActionMoveDown, Description: "Move down"},
			{Keys: "Left", Action: ActionMoveLeft, Description: "Move left"},
			{Keys: "Right", Action: ActionMoveRight, Description: "Move right"},
			{Keys: "Home", Action: ActionMoveLineStart, Description: "Move to line start"},
			{Keys: "End", Action: ActionMoveLineEnd, Description: "Move to line end"},
			{Keys: "Ctrl+Home", Action: ActionMoveFirstLine, Description: "Go to document start"},
			{Keys: "Ctrl+End", Action: ActionMoveLastLine, Description: "Go to document end"},

			// Editing
			{Keys: "Enter", Action: ActionSplitLine, Description: "Split line"},
			{Keys: "<C-j>", Action: ActionSplitLine, Description: "Split line (line feed)"},
			{Keys: "Backspace", Action: ActionDeleteBackward, Description: "Delete backward"},
			{Keys: "<C-h>", Action: ActionDeleteBackward, Description: "Delete backward (BS)"},

			// File
			{Keys: "Ctrl+S", Action: ActionSave, Description: "Save"},
			{Keys: "Ctrl+Q", Action: ActionQuit, Description: "Quit"},
			{Keys: "Ctrl+X", Action: ActionQuit, Description: "Quit"},
		},
	}
}

// WithCommandKeys returns the default keymap with the save and quit bindings
// replaced by the given key specs.
func WithCommandKeys(save, quit []string) *Keymap {
	km := NewKeymap("editor").WithSource("config")
	for _, b := range DefaultKeymap().Bindings {
		if b.Action == ActionSave || b.Action == ActionQuit {
			continue
		}
		km.AddBinding(b)
	}
	for _, s := range save {
		km.AddBinding(Binding{Keys: s, Action: ActionSave, Description: "Save"})
	}
	for _, q := range quit {
		km.AddBinding(Binding{Keys: q, Action: ActionQuit, Description: "Quit"})
	}
	return km
}
