package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/shhac/postie/internal/domain"
)

// setupKeyboardShortcuts configures all keyboard shortcuts for the main window
func (w *MainWindow) setupKeyboardShortcuts() {
	canvas := w.window.Canvas()

	add := func(key fyne.KeyName, mod fyne.KeyModifier, name string, fn func()) {
		canvas.AddShortcut(&desktop.CustomShortcut{KeyName: key, Modifier: mod}, func(fyne.Shortcut) {
			w.logger.Debug("keyboard shortcut: " + name)
			fn()
		})
	}

	// Super is Cmd on macOS, Win on Windows
	add(fyne.KeyReturn, fyne.KeyModifierSuper, "send request", w.requestPanel.TriggerSend)
	add(fyne.KeyS, fyne.KeyModifierSuper, "save base url", w.requestPanel.TriggerSave)
	add(fyne.KeyK, fyne.KeyModifierSuper, "focus base url", w.requestPanel.FocusBaseURL)
	add(fyne.KeyL, fyne.KeyModifierSuper, "clear response", w.responsePanel.ClearResponse)
	add(fyne.KeyC, fyne.KeyModifierSuper|fyne.KeyModifierShift, "copy response", w.responsePanel.CopyBody)
	add(fyne.Key1, fyne.KeyModifierSuper, "development environment", func() {
		w.handleEnvironmentChange(domain.EnvDevelopment)
	})
	add(fyne.Key2, fyne.KeyModifierSuper, "production environment", func() {
		w.handleEnvironmentChange(domain.EnvProduction)
	})

	w.logger.Info("keyboard shortcuts configured")
}
