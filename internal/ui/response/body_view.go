package response

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// BodyView shows the formatted response body. It looks like a normal entry
// so the text can be selected, but edits are dropped.
//
// Copy with nothing selected copies the whole body through onCopyAll.
type BodyView struct {
	widget.Entry

	onCopyAll func()
}

// NewBodyView creates a monospace, word-wrapped body view.
func NewBodyView(onCopyAll func()) *BodyView {
	v := &BodyView{onCopyAll: onCopyAll}
	v.MultiLine = true
	v.Wrapping = fyne.TextWrapWord
	v.TextStyle = fyne.TextStyle{Monospace: true}
	v.ExtendBaseWidget(v)
	return v
}

// TypedRune drops typed characters.
func (v *BodyView) TypedRune(_ rune) {}

// TypedKey passes navigation keys through and drops the rest.
func (v *BodyView) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyLeft, fyne.KeyRight, fyne.KeyUp, fyne.KeyDown,
		fyne.KeyHome, fyne.KeyEnd, fyne.KeyPageUp, fyne.KeyPageDown:
		v.Entry.TypedKey(key)
	}
}

// TypedShortcut keeps copy and select-all. Paste, cut and undo are ignored.
func (v *BodyView) TypedShortcut(shortcut fyne.Shortcut) {
	switch shortcut.(type) {
	case *fyne.ShortcutCopy:
		if v.SelectedText() == "" && v.onCopyAll != nil {
			v.onCopyAll()
			return
		}
		v.Entry.TypedShortcut(shortcut)
	case *fyne.ShortcutSelectAll:
		v.Entry.TypedShortcut(shortcut)
	}
}
