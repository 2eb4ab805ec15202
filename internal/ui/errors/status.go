package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/postie/internal/model"
)

// statusLook is the icon and fallback text for one status state. Each state
// has its own icon shape so the bar does not rely on color alone.
type statusLook struct {
	icon     func() fyne.Resource
	fallback string
}

var statusLooks = map[string]statusLook{
	model.StatusIdle:    {theme.RadioButtonIcon, "Ready"},
	model.StatusSending: {theme.ViewRefreshIcon, "Sending..."},
	model.StatusDone:    {theme.ConfirmIcon, "Done"},
	model.StatusError:   {theme.ErrorIcon, "Request failed"},
}

// StatusBar shows the submission status below the panels.
type StatusBar struct {
	widget.BaseWidget

	state     *model.StatusUIState
	label     *widget.Label
	indicator *widget.Icon
}

// NewStatusBar creates a status bar bound to state.
func NewStatusBar(state *model.StatusUIState) *StatusBar {
	s := &StatusBar{
		state:     state,
		label:     widget.NewLabel(""),
		indicator: widget.NewIcon(theme.RadioButtonIcon()),
	}
	s.label.Truncation = fyne.TextTruncateEllipsis
	s.ExtendBaseWidget(s)

	state.State.AddListener(binding.NewDataListener(s.refresh))
	state.Message.AddListener(binding.NewDataListener(s.refresh))
	s.refresh()

	return s
}

func (s *StatusBar) refresh() {
	st, _ := s.state.State.Get()
	msg, _ := s.state.Message.Get()

	look, ok := statusLooks[st]
	if !ok {
		look = statusLooks[model.StatusIdle]
	}
	if msg == "" {
		msg = look.fallback
	}

	s.indicator.SetResource(look.icon())
	s.label.SetText(msg)
}

// Text returns the label currently shown.
func (s *StatusBar) Text() string {
	return s.label.Text
}

// CreateRenderer implements fyne.Widget.
func (s *StatusBar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewHBox(s.indicator, s.label))
}
