package plotduty

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarpel/edim/internal/fanctl"
)

func TestRender(t *testing.T) {
	curve, err := fanctl.NewCurve(fanctl.DefaultSlots)
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "duty.png")
	require.NoError(t, Render(curve, 20, 110, file))

	st, err := os.Stat(file)
	require.NoError(t, err)
	assert.Greater(t, st.Size(), int64(0))
}

func TestRenderBadRange(t *testing.T) {
	curve, err := fanctl.NewCurve(fanctl.DefaultSlots)
	require.NoError(t, err)
	assert.Error(t, Render(curve, 100, 20, filepath.Join(t.TempDir(), "duty.png")))
}
