package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// NewCollapsibleSection wraps content in a single-item accordion.
// open sets whether the section starts expanded.
func NewCollapsibleSection(title string, content fyne.CanvasObject, open bool) *widget.Accordion {
	accordion := widget.NewAccordion(widget.NewAccordionItem(title, content))
	if open {
		accordion.Open(0)
	} else {
		accordion.Close(0)
	}
	return accordion
}
