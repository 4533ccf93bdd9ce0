package terminal

import (
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"snake-arcade/app"
	"snake-arcade/game/types"
)

func newSimScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	logger := log.New()
	logger.SetOutput(io.Discard)

	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := New(sim, nil, nil, log.NewEntry(logger))
	require.NoError(t, err)
	sim.SetSize(80, 30)
	t.Cleanup(s.Close)
	return s, sim
}

func rowText(cells []tcell.SimCell, width, row, col, n int) string {
	out := make([]rune, 0, n)
	for c := col; c < col+n; c++ {
		cell := cells[row*width+c]
		if len(cell.Runes) == 0 {
			out = append(out, ' ')
			continue
		}
		out = append(out, cell.Runes[0])
	}
	return string(out)
}

func TestTranslateKey(t *testing.T) {
	require.Equal(t, app.KeyUp, translateKey(tcell.KeyUp, 0))
	require.Equal(t, app.KeyLeft, translateKey(tcell.KeyLeft, 0))
	require.Equal(t, app.KeyE, translateKey(tcell.KeyRune, 'e'))
	require.Equal(t, app.KeyH, translateKey(tcell.KeyRune, 'H'))
	require.Equal(t, app.KeyQ, translateKey(tcell.KeyRune, 'q'))
	require.Equal(t, app.KeyNone, translateKey(tcell.KeyRune, 'x'))
	require.Equal(t, app.KeyNone, translateKey(tcell.KeyEnter, 0))
}

func TestDrawPlaying(t *testing.T) {
	s, sim := newSimScreen(t)

	s.BeginFrame()
	s.DrawPlaying(app.PlayView{
		Snake:     []types.Point{{X: 120, Y: 100}, {X: 100, Y: 100}},
		Food:      types.Point{X: 400, Y: 300},
		Obstacles: []types.Point{{X: 200, Y: 200}},
		Score:     3,
		Cell:      types.CellSize,
	})
	s.EndFrame()

	cells, w, _ := sim.GetContents()
	require.Equal(t, "Score: 3", rowText(cells, w, 0, 1, 8))

	_, bg, _ := cells[15*w+40].Style.Decompose()
	require.Equal(t, tcell.NewRGBColor(255, 0, 0), bg)
	_, bg, _ = cells[15*w+41].Style.Decompose()
	require.Equal(t, tcell.NewRGBColor(255, 0, 0), bg)

	_, bg, _ = cells[5*w+12].Style.Decompose()
	require.Equal(t, tcell.NewRGBColor(0, 255, 0), bg)

	_, bg, _ = cells[10*w+20].Style.Decompose()
	require.Equal(t, tcell.NewRGBColor(255, 255, 255), bg)
}

func TestDrawGameOver(t *testing.T) {
	s, sim := newSimScreen(t)

	s.BeginFrame()
	s.DrawGameOver(app.GameOverView{Score: 4, Best: 9})
	s.EndFrame()

	cells, w, _ := sim.GetContents()
	require.Equal(t, app.GameOverText(4), rowText(cells, w, 10, 20, len(app.GameOverText(4))))
	require.Equal(t, app.BestScoreText(9), rowText(cells, w, 12, 20, len(app.BestScoreText(9))))
}

func TestDrawMenuBlitsFrame(t *testing.T) {
	s, sim := newSimScreen(t)

	frame := image.NewRGBA(image.Rect(0, 0, 30, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 30; x++ {
			frame.SetRGBA(x, y, color.RGBA{B: 255, A: 255})
		}
	}

	s.BeginFrame()
	s.DrawMenu(app.MenuView{Image: frame})
	s.EndFrame()

	cells, w, _ := sim.GetContents()
	cell := cells[7*w+25]
	require.Equal(t, []rune{'▀'}, cell.Runes)
	fg, bg, _ := cell.Style.Decompose()
	require.Equal(t, tcell.NewRGBColor(0, 0, 255), fg)
	require.Equal(t, tcell.NewRGBColor(0, 0, 255), bg)

	require.Equal(t, app.InstructionsText[:10], rowText(cells, w, 21, 20, 10))
}
