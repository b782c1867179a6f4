// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

package editor

import "github.com/google/uuid"

// Keyboard shortcut keys, named after DOM KeyboardEvent key values.
const (
	KeyEscape = "Escape"
	KeyDelete = "Delete"
)

// ShortcutsEnabled reports whether global keyboard shortcuts are active.
func (e *Editor) ShortcutsEnabled() bool { return e.shortcutsEnabled }

// SetShortcutsEnabled gates the global shortcuts, for hosts that need to
// mute them while a text input has focus.
func (e *Editor) SetShortcutsEnabled(on bool) { e.shortcutsEnabled = on }

// HandleKey dispatches a global keyboard shortcut: Escape closes an open
// popover, Delete removes the selected table. Unknown keys and disabled
// shortcuts are ignored.
func (e *Editor) HandleKey(key string) {
	if !e.shortcutsEnabled {
		return
	}
	switch key {
	case KeyEscape:
		e.popover = nil
	case KeyDelete:
		if e.selected != uuid.Nil {
			e.DeleteTable(e.selected)
		}
	}
}
