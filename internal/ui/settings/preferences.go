package settings

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Preference keys stored in fyne.Preferences.
const (
	PrefRequestTimeout = "requestTimeout"
	PrefTheme          = "appTheme"
)

// Theme modes.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

var themeLabels = map[string]string{
	ThemeSystem: "System Default",
	ThemeLight:  "Light",
	ThemeDark:   "Dark",
}

// PreferencesCallbacks provides hooks for the preferences dialog to apply changes.
type PreferencesCallbacks struct {
	OnThemeChange   func(mode string)          // Called with "system", "dark", or "light"
	OnTimeoutChange func(timeout time.Duration) // Zero means no timeout
}

// RequestTimeout returns the saved request timeout, or fallback when none
// has been saved.
func RequestTimeout(prefs fyne.Preferences, fallback time.Duration) time.Duration {
	seconds := prefs.FloatWithFallback(PrefRequestTimeout, -1)
	if seconds < 0 {
		return fallback
	}
	return time.Duration(seconds * float64(time.Second))
}

// ThemeMode returns the saved theme mode.
func ThemeMode(prefs fyne.Preferences) string {
	mode := prefs.StringWithFallback(PrefTheme, ThemeSystem)
	if _, ok := themeLabels[mode]; !ok {
		return ThemeSystem
	}
	return mode
}

// ParseTimeoutSeconds parses the dialog's timeout field. Empty means no timeout.
func ParseTimeoutSeconds(text string) (float64, bool) {
	if text == "" {
		return 0, true
	}
	val, err := strconv.ParseFloat(text, 64)
	if err != nil || val < 0 {
		return 0, false
	}
	return val, true
}

// ShowPreferencesDialog displays the unified preferences dialog with General and Appearance tabs.
func ShowPreferencesDialog(a fyne.App, window fyne.Window, current time.Duration, callbacks PreferencesCallbacks) {
	prefs := a.Preferences()

	// --- General tab ---

	timeoutEntry := widget.NewEntry()
	timeoutEntry.SetText(strconv.FormatFloat(current.Seconds(), 'f', -1, 64))

	generalTab := container.NewTabItem("General", container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Request Timeout (seconds)", timeoutEntry),
		),
		widget.NewLabel("0 waits for the server indefinitely."),
	))

	// --- Appearance tab ---

	labels := []string{themeLabels[ThemeSystem], themeLabels[ThemeLight], themeLabels[ThemeDark]}
	themeSelector := widget.NewSelect(labels, nil)
	themeSelector.SetSelected(themeLabels[ThemeMode(prefs)])

	appearanceTab := container.NewTabItem("Appearance", container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Theme", themeSelector),
		),
	))

	// --- Build dialog ---

	tabs := container.NewAppTabs(generalTab, appearanceTab)

	dlg := dialog.NewCustomConfirm("Preferences", "Save", "Cancel", tabs, func(save bool) {
		if !save {
			return
		}

		if seconds, ok := ParseTimeoutSeconds(timeoutEntry.Text); ok {
			prefs.SetFloat(PrefRequestTimeout, seconds)
			if callbacks.OnTimeoutChange != nil {
				callbacks.OnTimeoutChange(time.Duration(seconds * float64(time.Second)))
			}
		}

		mode := ThemeSystem
		for m, label := range themeLabels {
			if label == themeSelector.Selected {
				mode = m
			}
		}
		prefs.SetString(PrefTheme, mode)
		if callbacks.OnThemeChange != nil {
			callbacks.OnThemeChange(mode)
		}
	}, window)

	dlg.Resize(fyne.NewSize(500, 350))
	dlg.Show()
}
