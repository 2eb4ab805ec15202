package errors

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/shhac/postie/internal/errors"
	"github.com/shhac/postie/internal/model"
)

func TestStatusBar_FollowsState(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	state := model.NewStatusUIState()
	bar := NewStatusBar(state)
	assert.Equal(t, "Ready", bar.Text())

	state.Set(model.StatusSending, "Sending GET http://localhost/api")
	assert.Equal(t, "Sending GET http://localhost/api", bar.Text())

	state.Set(model.StatusError, "")
	assert.Equal(t, "Request failed", bar.Text())

	state.Set("unknown", "")
	assert.Equal(t, "Ready", bar.Text())
}

func TestErrorContent(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	uiErr := apperrors.ClassifyError(apperrors.RequestFailed(errors.New("no such host")))
	content := ErrorContent(uiErr)

	first, ok := content.Objects[0].(*widget.Label)
	require.True(t, ok)
	assert.Equal(t, "Request failed: no such host", first.Text)
	// message, separator, "You can:" and one label per recovery step
	assert.Len(t, content.Objects, 3+len(uiErr.Recovery))
}

func TestErrorContent_Details(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	uiErr := apperrors.ClassifyError(errors.New("mystery"))
	content := ErrorContent(uiErr)

	_, ok := content.Objects[len(content.Objects)-1].(*widget.Accordion)
	assert.True(t, ok)
}
