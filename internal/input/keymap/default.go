package keymap

// Editor actions.
const (
	ActionQuit        = "editor.quit"
	ActionCursorUp    = "cursor.up"
	ActionCursorDown  = "cursor.down"
	ActionCursorLeft  = "cursor.left"
	ActionCursorRight = "cursor.right"
	ActionLineStart   = "cursor.lineStart"
	ActionLineEnd     = "cursor.lineEnd"
	ActionPageUp      = "view.pageUp"
	ActionPageDown    = "view.pageDown"
)

var defaultBindings = []Binding{
	{Keys: "C-q", Action: ActionQuit, Description: "Quit"},
	{Keys: "Up", Action: ActionCursorUp, Description: "Move up"},
	{Keys: "Down", Action: ActionCursorDown, Description: "Move down"},
	{Keys: "Left", Action: ActionCursorLeft, Description: "Move left"},
	{Keys: "Right", Action: ActionCursorRight, Description: "Move right"},
	{Keys: "Home", Action: ActionLineStart, Description: "Start of line"},
	{Keys: "End", Action: ActionLineEnd, Description: "End of line"},
	{Keys: "PageUp", Action: ActionPageUp, Description: "Page up"},
	{Keys: "PageDown", Action: ActionPageDown, Description: "Page down"},
}

// Default returns the built-in keymap.
func Default() *Keymap {
	km := NewKeymap("default")
	for _, b := range defaultBindings {
		if err := km.AddBinding(b); err != nil {
			panic(err)
		}
	}
	return km
}
