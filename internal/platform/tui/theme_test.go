package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flow3d/internal/puzzle"
)

func TestThemeByName(t *testing.T) {
	for _, name := range ThemeNames() {
		theme, ok := ThemeByName(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, theme.Name)
	}

	theme, ok := ThemeByName("Monochrome")
	assert.True(t, ok)
	assert.Equal(t, "mono", theme.Name)

	theme, ok = ThemeByName("sepia")
	assert.False(t, ok)
	assert.Equal(t, "default", theme.Name)
}

func TestSetTheme(t *testing.T) {
	prev := GetTheme()
	t.Cleanup(func() { SetTheme(prev) })

	SetTheme(NeonTheme())
	assert.Equal(t, "neon", GetTheme().Name)

	lvl := loadLevel(t, "easy")
	m, err := NewPlayModel(lvl, nil, "", 80, 24)
	require.NoError(t, err)
	assert.Equal(t, "neon", m.theme.Name, "models pick up the theme set before them")
}

func TestRenderBoard(t *testing.T) {
	lvl := loadLevel(t, "easy")
	p, err := lvl.NewPuzzle()
	require.NoError(t, err)
	theme := MonoTheme()
	offBoard := puzzle.C(-1, -1, -1)

	assert.Equal(t, "R ·\nR ·", renderBoard(p, 0, offBoard, nil, theme))
	assert.Equal(t, "O ·\nO ·", renderBoard(p, 1, offBoard, nil, theme))

	var drag puzzle.Drag
	require.NoError(t, drag.Begin(p, puzzle.C(0, 0, 0)))
	require.True(t, drag.Extend(p, puzzle.C(1, 0, 0)))
	assert.Equal(t, "R r\nR ·", renderBoard(p, 0, offBoard, &drag, theme), "pending drag is drawn")

	_, err = drag.Commit(p)
	require.NoError(t, err)
	assert.Equal(t, "R r\nR ·", renderBoard(p, 0, offBoard, nil, theme))

	strip := renderLayerStrip(p, 1, theme)
	assert.Contains(t, strip, "z0")
	assert.Contains(t, strip, "z1")
	assert.Contains(t, strip, "Rr")
	assert.Contains(t, strip, "O·")
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "  abc", centerText("abc", 7))
	assert.Equal(t, "abcdef", centerText("abcdef", 4))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00", FormatDuration(0))
	assert.Equal(t, "0:00", FormatDuration(-time.Second))
	assert.Equal(t, "1:05", FormatDuration(65*time.Second))
	assert.Equal(t, "1:00", FormatDuration(59600*time.Millisecond))
	assert.Equal(t, "12:34", FormatDuration(12*time.Minute+34*time.Second))
}
