package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/postie/internal/version"
)

// ShowAboutDialog displays information about the Postie application.
func ShowAboutDialog(parent fyne.Window) {
	content := container.NewVBox(
		widget.NewLabelWithStyle("Postie", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("A lightweight single-screen API testing client"),
		widget.NewLabel("Version "+version.Version),
		widget.NewSeparator(),
		widget.NewLabel("Built with Fyne and Go"),
	)
	dialog.ShowCustom("About Postie", "Close", content, parent)
}

// shortcutList is shown in the shortcut reference dialog.
var shortcutList = []struct{ action, key string }{
	{"Send Request", "⌘ Return"},
	{"Save Base URL", "⌘ S"},
	{"Focus Base URL", "⌘ K"},
	{"Clear Response", "⌘ L"},
	{"Copy Response", "⌘ ⇧ C"},
	{"Development Environment", "⌘ 1"},
	{"Production Environment", "⌘ 2"},
}

// ShowShortcutDialog displays a reference of all keyboard shortcuts.
func ShowShortcutDialog(parent fyne.Window) {
	grid := container.NewGridWithColumns(2)
	for _, s := range shortcutList {
		grid.Add(widget.NewLabel(s.action))
		grid.Add(widget.NewLabelWithStyle(s.key, fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true}))
	}

	dialog.ShowCustom("Keyboard Shortcuts", "Close", container.NewVScroll(grid), parent)
}
