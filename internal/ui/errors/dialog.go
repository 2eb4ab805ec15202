package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	apperrors "github.com/shhac/postie/internal/errors"
)

// ShowError opens an error dialog for err. Info-level errors, such as a
// request already in flight, are dropped.
func ShowError(err error, window fyne.Window) {
	uiErr := apperrors.ClassifyError(err)
	if uiErr == nil || uiErr.Severity == apperrors.SeverityInfo {
		return
	}

	d := dialog.NewCustom(uiErr.Title, "Close", ErrorContent(uiErr), window)
	d.Resize(fyne.NewSize(500, 300))
	d.Show()
}

// ErrorContent lays out the message, recovery bullets and a collapsed
// details section for uiErr.
func ErrorContent(uiErr *apperrors.UIError) *fyne.Container {
	content := container.NewVBox(wrapped(uiErr.Message))

	if len(uiErr.Recovery) > 0 {
		content.Add(widget.NewSeparator())
		content.Add(widget.NewLabel("You can:"))
		for _, step := range uiErr.Recovery {
			content.Add(wrapped("• " + step))
		}
	}

	if uiErr.Details != "" {
		content.Add(widget.NewAccordion(
			widget.NewAccordionItem("Technical Details", wrapped(uiErr.Details)),
		))
	}

	return content
}

func wrapped(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.Wrapping = fyne.TextWrapWord
	return l
}
