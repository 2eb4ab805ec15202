package response

import (
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/postie/internal/format"
	"github.com/shhac/postie/internal/model"
)

// ResponsePanel shows the outcome of the last submission: a colored status
// line, the formatted body, timing and size. A failed submission replaces the
// body with its error message.
type ResponsePanel struct {
	widget.BaseWidget

	state     *model.ResponseState
	clipboard fyne.Clipboard

	status   *canvas.Text
	body     *BodyView
	errText  *widget.Label
	duration *widget.Label
	size     *widget.Label
	copyBtn  *widget.Button
	progress *widget.ProgressBarInfinite

	bodyView  fyne.CanvasObject
	errorView fyne.CanvasObject
}

// NewResponsePanel creates a response panel bound to state. Copy writes the
// displayed body to clipboard.
func NewResponsePanel(state *model.ResponseState, clipboard fyne.Clipboard) *ResponsePanel {
	p := &ResponsePanel{
		state:     state,
		clipboard: clipboard,
	}
	p.ExtendBaseWidget(p)
	p.build()
	p.bind()
	return p
}

func (p *ResponsePanel) build() {
	p.status = canvas.NewText("", BucketColor(format.BucketNeutral))
	p.status.TextStyle = fyne.TextStyle{Bold: true}

	p.body = NewBodyView(p.CopyBody)
	p.duration = widget.NewLabel("")
	p.size = widget.NewLabel("")

	p.copyBtn = widget.NewButtonWithIcon("Copy", theme.ContentCopyIcon(), p.CopyBody)
	p.copyBtn.Disable()

	p.progress = widget.NewProgressBarInfinite()
	p.progress.Stop()
	p.progress.Hide()

	p.errText = widget.NewLabel("")
	p.errText.Wrapping = fyne.TextWrapWord
	p.errText.Importance = widget.DangerImportance

	p.bodyView = container.NewBorder(
		nil,
		container.NewVBox(widget.NewSeparator(), container.NewHBox(p.duration, p.size)),
		nil, nil,
		p.body,
	)
	p.errorView = container.NewVBox(p.errText)
	p.errorView.Hide()
}

func (p *ResponsePanel) bind() {
	p.body.Bind(p.state.TextData)
	p.duration.Bind(p.state.Duration)
	p.size.Bind(p.state.Size)

	p.state.TextData.AddListener(binding.NewDataListener(func() {
		text, _ := p.state.TextData.Get()
		if text == "" {
			p.copyBtn.Disable()
			return
		}
		p.copyBtn.Enable()
	}))

	p.state.Status.AddListener(binding.NewDataListener(p.updateStatus))
	p.state.Bucket.AddListener(binding.NewDataListener(p.updateStatus))
	p.state.Loading.AddListener(binding.NewDataListener(p.updateLoading))
	p.state.Error.AddListener(binding.NewDataListener(p.updateError))
}

func (p *ResponsePanel) updateStatus() {
	label, _ := p.state.Status.Get()
	bucket, _ := p.state.Bucket.Get()

	p.status.Text = label
	p.status.Color = BucketColor(format.Bucket(bucket))
	p.status.Refresh()
}

func (p *ResponsePanel) updateLoading() {
	if loading, _ := p.state.Loading.Get(); loading {
		p.progress.Show()
		p.progress.Start()
		return
	}
	p.progress.Stop()
	p.progress.Hide()
}

// updateError swaps the body for the error text while an error is set.
func (p *ResponsePanel) updateError() {
	msg, _ := p.state.Error.Get()
	p.errText.SetText(msg)
	if msg == "" {
		p.errorView.Hide()
		p.bodyView.Show()
		return
	}
	p.bodyView.Hide()
	p.errorView.Show()
}

// CopyBody writes the displayed body to the clipboard. Nothing happens while
// the body is empty.
func (p *ResponsePanel) CopyBody() {
	text, _ := p.state.TextData.Get()
	if text == "" || p.clipboard == nil {
		return
	}
	p.clipboard.SetContent(text)
}

// ClearResponse empties the panel.
func (p *ResponsePanel) ClearResponse() {
	p.state.Clear()
}

// CreateRenderer implements fyne.Widget.
func (p *ResponsePanel) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewHBox(
		widget.NewLabel("Response"),
		p.status,
		layout.NewSpacer(),
		p.copyBtn,
	)

	return widget.NewSimpleRenderer(container.NewBorder(
		header,
		p.progress,
		nil, nil,
		container.NewStack(p.bodyView, p.errorView),
	))
}

// MinSize implements fyne.Widget.
func (p *ResponsePanel) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

// BucketColor converts the bucket's hex color to a canvas color.
func BucketColor(b format.Bucket) color.Color {
	hex := strings.TrimPrefix(b.Color(), "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 6 {
		return theme.Color(theme.ColorNameForeground)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
