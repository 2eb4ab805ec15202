package response

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/shhac/postie/internal/domain"
	"github.com/shhac/postie/internal/format"
	"github.com/shhac/postie/internal/model"
)

// memClipboard is an in-memory fyne.Clipboard.
type memClipboard struct{ content string }

func (c *memClipboard) Content() string         { return c.content }
func (c *memClipboard) SetContent(text string) { c.content = text }

func TestBucketColor(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0x16, G: 0xa3, B: 0x4a, A: 0xff}, BucketColor(format.BucketSuccess))
	assert.Equal(t, color.NRGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff}, BucketColor(format.BucketServerError))
	assert.Equal(t, BucketColor(format.BucketNeutral), BucketColor(format.Bucket("unknown")))
}

func TestResponsePanel_CopyBody(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	state := model.NewResponseState()
	clip := &memClipboard{}
	p := NewResponsePanel(state, clip)

	// Nothing to copy yet.
	p.CopyBody()
	assert.Equal(t, "", clip.content)

	code := 200
	state.Apply(domain.ResponseResult{StatusCode: &code, BodyText: "{\n  \"ok\": true\n}"})
	p.CopyBody()
	assert.Equal(t, "{\n  \"ok\": true\n}", clip.content)
}

func TestResponsePanel_ClearResponse(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	state := model.NewResponseState()
	p := NewResponsePanel(state, &memClipboard{})

	code := 500
	state.Apply(domain.ResponseResult{StatusCode: &code, BodyText: "boom"})
	p.ClearResponse()

	text, _ := state.TextData.Get()
	status, _ := state.Status.Get()
	assert.Empty(t, text)
	assert.Empty(t, status)
}

func TestBodyView_BlocksTyping(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	v := NewBodyView(nil)
	v.SetText("fixed")
	test.Type(v, "more")
	assert.Equal(t, "fixed", v.Text)
}

func TestBodyView_CopyWithoutSelectionCopiesAll(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	copied := 0
	v := NewBodyView(func() { copied++ })
	v.SetText("{}")
	v.TypedShortcut(&fyne.ShortcutCopy{Clipboard: &memClipboard{}})
	assert.Equal(t, 1, copied)
}

func TestResponsePanel_ErrorReplacesBody(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	state := model.NewResponseState()
	p := NewResponsePanel(state, &memClipboard{})

	state.Apply(domain.ResponseResult{ErrorMessage: "Request failed: connection refused"})
	assert.True(t, p.errorView.Visible())
	assert.False(t, p.bodyView.Visible())
	assert.Equal(t, "Request failed: connection refused", p.errText.Text)
	assert.True(t, p.copyBtn.Disabled())

	code := 201
	state.Apply(domain.ResponseResult{StatusCode: &code, BodyText: "{}"})
	assert.False(t, p.errorView.Visible())
	assert.True(t, p.bodyView.Visible())
	assert.Equal(t, "201 Created", p.status.Text)
	assert.Equal(t, BucketColor(format.BucketSuccess), p.status.Color)
}
