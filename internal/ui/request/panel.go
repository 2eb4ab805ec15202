package request

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/postie/internal/domain"
	"github.com/shhac/postie/internal/model"
	"github.com/shhac/postie/internal/ui/components"
)

const getBodyHint = "GET requests are sent without a body"

// RequestPanel handles request input.
//
// The method and environment selects mirror their bindings. A listener that
// moves a select sets 'syncing' first so the select's OnChanged does not
// echo the change back as a user action.
type RequestPanel struct {
	widget.BaseWidget

	state       *model.RequestState
	environment binding.String
	syncing     bool

	methodSelect *widget.Select
	envSelect    *widget.Select
	baseURLEntry *widget.Entry
	saveBtn      *widget.Button
	pathEntry    *widget.Entry
	queryEntry   *widget.Entry
	authCheck    *widget.Check
	tokenEntry   *widget.Entry
	bodyEditor   *widget.Entry
	bodyHint     *widget.Label
	sendBtn      *widget.Button

	logger *slog.Logger

	onSend              func()
	onSaveBaseURL       func()
	onEnvironmentChange func(env domain.Environment)
}

// NewRequestPanel creates a new request panel bound to the request form state
// and the active environment.
func NewRequestPanel(state *model.RequestState, environment binding.String, logger *slog.Logger) *RequestPanel {
	p := &RequestPanel{
		state:       state,
		environment: environment,
		logger:      logger,
	}

	methods := make([]string, len(domain.Methods))
	for i, m := range domain.Methods {
		methods[i] = string(m)
	}
	p.methodSelect = widget.NewSelect(methods, func(selected string) {
		if p.syncing {
			return
		}
		_ = p.state.Method.Set(selected)
	})

	envs := make([]string, len(domain.Environments))
	for i, env := range domain.Environments {
		envs[i] = string(env)
	}
	p.envSelect = widget.NewSelect(envs, func(selected string) {
		if p.syncing {
			return
		}
		p.logger.Debug("environment selected", slog.String("environment", selected))
		if p.onEnvironmentChange != nil {
			p.onEnvironmentChange(domain.Environment(selected))
		}
	})

	p.baseURLEntry = widget.NewEntry()
	p.baseURLEntry.SetPlaceHolder("http://localhost:3000")
	p.baseURLEntry.Bind(state.BaseURL)

	p.saveBtn = widget.NewButton("Save", func() {
		if p.onSaveBaseURL != nil {
			p.onSaveBaseURL()
		}
	})

	p.pathEntry = widget.NewEntry()
	p.pathEntry.SetPlaceHolder("/api/users")
	p.pathEntry.Bind(state.Path)

	p.queryEntry = widget.NewEntry()
	p.queryEntry.SetPlaceHolder("id=1&sort=name")
	p.queryEntry.Bind(state.Query)

	p.authCheck = widget.NewCheckWithData("Bearer token", state.UseAuth)

	p.tokenEntry = widget.NewPasswordEntry()
	p.tokenEntry.SetPlaceHolder("token")
	p.tokenEntry.Bind(state.Token)

	// Multiline JSON editor bound to state.Body
	p.bodyEditor = widget.NewMultiLineEntry()
	p.bodyEditor.SetPlaceHolder(`{"field": "value"}`)
	p.bodyEditor.Wrapping = fyne.TextWrapWord
	p.bodyEditor.TextStyle = fyne.TextStyle{Monospace: true}
	p.bodyEditor.Bind(state.Body)

	p.bodyHint = widget.NewLabel(getBodyHint)
	p.bodyHint.Importance = widget.LowImportance

	p.sendBtn = widget.NewButton("Send", func() {
		p.handleSend()
	})
	p.sendBtn.Importance = widget.HighImportance

	state.Method.AddListener(binding.NewDataListener(p.syncMethod))
	state.UseAuth.AddListener(binding.NewDataListener(p.syncAuth))
	environment.AddListener(binding.NewDataListener(p.syncEnvironment))

	p.ExtendBaseWidget(p)
	return p
}

// syncMethod reflects the method binding in the select and the body hint.
func (p *RequestPanel) syncMethod() {
	methodText, _ := p.state.Method.Get()
	method, err := domain.ParseMethod(methodText)
	if err != nil {
		return
	}

	if p.methodSelect.Selected != string(method) {
		p.syncing = true
		p.methodSelect.SetSelected(string(method))
		p.syncing = false
	}

	if method.AllowsBody() {
		p.bodyHint.Hide()
	} else {
		p.bodyHint.Show()
	}
}

// syncAuth enables the token field only while auth is on.
func (p *RequestPanel) syncAuth() {
	useAuth, _ := p.state.UseAuth.Get()
	if useAuth {
		p.tokenEntry.Enable()
	} else {
		p.tokenEntry.Disable()
	}
}

func (p *RequestPanel) syncEnvironment() {
	env, _ := p.environment.Get()
	if p.envSelect.Selected == env {
		return
	}
	p.syncing = true
	p.envSelect.SetSelected(env)
	p.syncing = false
}

// SetOnSend sets the callback for when Send is clicked.
func (p *RequestPanel) SetOnSend(fn func()) {
	p.onSend = fn
}

// SetOnSaveBaseURL sets the callback for the base URL Save button.
func (p *RequestPanel) SetOnSaveBaseURL(fn func()) {
	p.onSaveBaseURL = fn
}

// SetOnEnvironmentChange sets the callback for a user environment switch.
func (p *RequestPanel) SetOnEnvironmentChange(fn func(env domain.Environment)) {
	p.onEnvironmentChange = fn
}

// SetBusy disables the Send button while a request is in flight.
func (p *RequestPanel) SetBusy(busy bool) {
	if busy {
		p.sendBtn.SetText("Sending…")
		p.sendBtn.Disable()
	} else {
		p.sendBtn.SetText("Send")
		p.sendBtn.Enable()
	}
}

func (p *RequestPanel) handleSend() {
	if p.onSend == nil || p.sendBtn.Disabled() {
		return
	}
	p.onSend()
}

// TriggerSend programmatically triggers the send action (for keyboard shortcut)
func (p *RequestPanel) TriggerSend() {
	p.handleSend()
}

// TriggerSave saves the base URL (for keyboard shortcut)
func (p *RequestPanel) TriggerSave() {
	if p.onSaveBaseURL != nil {
		p.onSaveBaseURL()
	}
}

// FocusBaseURL focuses the base URL entry (for keyboard shortcut)
func (p *RequestPanel) FocusBaseURL() {
	if c := fyne.CurrentApp().Driver().CanvasForObject(p.baseURLEntry); c != nil {
		c.Focus(p.baseURLEntry)
	}
}

// CreateRenderer returns the widget renderer
func (p *RequestPanel) CreateRenderer() fyne.WidgetRenderer {
	target := widget.NewForm(
		widget.NewFormItem("Environment", p.envSelect),
		widget.NewFormItem("Base URL", container.NewBorder(nil, nil, nil, p.saveBtn, p.baseURLEntry)),
		widget.NewFormItem("Path", p.pathEntry),
		widget.NewFormItem("Query", p.queryEntry),
	)

	// Start expanded when auth is already on so the token is visible.
	useAuth, _ := p.state.UseAuth.Get()
	auth := components.NewCollapsibleSection("Authorization",
		container.NewBorder(nil, nil, p.authCheck, nil, p.tokenEntry),
		useAuth,
	)

	top := container.NewVBox(
		container.NewBorder(nil, nil, p.methodSelect, nil, widget.NewLabel("Request")),
		target,
		auth,
		widget.NewSeparator(),
	)

	body := container.NewBorder(
		container.NewHBox(widget.NewLabel("Body"), p.bodyHint),
		nil, nil, nil,
		p.bodyEditor,
	)

	sendBox := container.NewHBox(
		layout.NewSpacer(),
		p.sendBtn,
	)

	content := container.NewBorder(
		top,
		container.NewVBox(
			widget.NewSeparator(),
			sendBox,
		),
		nil, nil,
		body,
	)

	return widget.NewSimpleRenderer(content)
}
