// Package terminal draws the game on a terminal with tcell. One terminal
// cell is 10x20 logical units, so the 800x600 playfield is 80x30 cells and a
// playfield cell is two terminal columns wide.
package terminal

import (
	"image"
	"image/color"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"snake-arcade/app"
	"snake-arcade/game/types"
)

const (
	unitsPerCol = 10
	unitsPerRow = 20
	frameTime   = time.Second / 60
)

var (
	snakeStyle    = tcell.StyleDefault.Background(tcell.NewRGBColor(0, 255, 0))
	foodStyle     = tcell.StyleDefault.Background(tcell.NewRGBColor(255, 0, 0))
	obstacleStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(255, 255, 255))
	textStyle     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 255, 255)).Background(tcell.ColorBlack)
	titleStyle    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 0)).Background(tcell.ColorBlack).Bold(true)
)

// Screen implements app.Frontend on a tcell screen.
type Screen struct {
	screen    tcell.Screen
	logo      image.Image
	badge     image.Image
	lastFrame time.Time
	log       *log.Entry
}

// New initialises s and takes ownership of it. Logo and badge may be nil.
func New(s tcell.Screen, logo, badge image.Image, logger *log.Entry) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "init terminal")
	}
	s.HideCursor()
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	s.Clear()
	return &Screen{
		screen:    s,
		logo:      logo,
		badge:     badge,
		lastFrame: time.Now(),
		log:       logger,
	}, nil
}

// Open creates a screen on the controlling terminal.
func Open(logo, badge image.Image, logger *log.Entry) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "problem creating screen")
	}
	return New(s, logo, badge, logger)
}

func (t *Screen) Close() {
	t.screen.Fini()
}

// Poll drains the pending events without blocking. Ctrl-C stands in for a
// window close request.
func (t *Screen) Poll() app.InputFrame {
	var in app.InputFrame
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				in.Close = true
				continue
			}
			if key := translateKey(ev.Key(), ev.Rune()); key != app.KeyNone {
				in.Keys = append(in.Keys, key)
			}
		case *tcell.EventResize:
			t.screen.Sync()
		case nil:
			in.Close = true
			return in
		}
	}
	return in
}

func translateKey(k tcell.Key, r rune) app.Key {
	switch k {
	case tcell.KeyUp:
		return app.KeyUp
	case tcell.KeyDown:
		return app.KeyDown
	case tcell.KeyLeft:
		return app.KeyLeft
	case tcell.KeyRight:
		return app.KeyRight
	case tcell.KeyRune:
		switch unicode.ToLower(r) {
		case 'e':
			return app.KeyE
		case 'm':
			return app.KeyM
		case 'h':
			return app.KeyH
		case 'r':
			return app.KeyR
		case 'q':
			return app.KeyQ
		}
	}
	return app.KeyNone
}

func (t *Screen) BeginFrame() {
	t.screen.Clear()
}

// EndFrame shows the frame and sleeps out the rest of the frame time.
func (t *Screen) EndFrame() {
	t.screen.Show()
	if wait := frameTime - time.Since(t.lastFrame); wait > 0 {
		time.Sleep(wait)
	}
	t.lastFrame = time.Now()
}

func (t *Screen) DrawMenu(v app.MenuView) {
	if v.Image != nil {
		t.drawImage(v.Image, image.Rect(250, 150, 550, 350))
	}
	t.drawText(types.ScreenWidth/6, types.ScreenHeight/9, app.TitleText, titleStyle)
	t.drawText(200, 420, app.InstructionsText, textStyle)

	t.drawImage(t.logo, image.Rect(10, types.ScreenHeight-90, 90, types.ScreenHeight-10))
	t.drawText(100, types.ScreenHeight-50, app.CreditText, textStyle)
	t.drawImage(t.badge, image.Rect(types.ScreenWidth-160, types.ScreenHeight-160, types.ScreenWidth-10, types.ScreenHeight-10))
}

func (t *Screen) DrawPlaying(v app.PlayView) {
	for _, o := range v.Obstacles {
		t.fillCell(o, v.Cell, obstacleStyle)
	}
	t.fillCell(v.Food, v.Cell, foodStyle)
	for _, p := range v.Snake {
		t.fillCell(p, v.Cell, snakeStyle)
	}
	t.drawText(10, 10, app.ScoreText(v.Score), textStyle)
}

func (t *Screen) DrawGameOver(v app.GameOverView) {
	x := types.ScreenWidth / 4
	y := types.ScreenHeight / 3
	t.drawText(x, y, app.GameOverText(v.Score), titleStyle)
	t.drawText(x, y+50, app.BestScoreText(v.Best), textStyle)
	t.drawText(x-40, y+100, app.RestartText, textStyle)

	t.drawImage(t.logo, image.Rect(10, types.ScreenHeight-90, 90, types.ScreenHeight-10))
	t.drawImage(t.badge, image.Rect(types.ScreenWidth-150, types.ScreenHeight-130, types.ScreenWidth, types.ScreenHeight))
	t.drawText(100, types.ScreenHeight-30, app.CreditText, textStyle)
}

// fillCell paints the terminal cells covering one playfield cell.
func (t *Screen) fillCell(p types.Point, cell int, style tcell.Style) {
	col0, row0 := p.X/unitsPerCol, p.Y/unitsPerRow
	cols, rows := max(cell/unitsPerCol, 1), max(cell/unitsPerRow, 1)
	for r := row0; r < row0+rows; r++ {
		for c := col0; c < col0+cols; c++ {
			t.screen.SetContent(c, r, ' ', nil, style)
		}
	}
}

func (t *Screen) drawText(x, y int, text string, style tcell.Style) {
	col, row := x/unitsPerCol, y/unitsPerRow
	for _, r := range text {
		t.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

// drawImage scales img into dst with upper half blocks: the foreground
// carries the top pixel and the background the bottom one.
func (t *Screen) drawImage(img image.Image, dst image.Rectangle) {
	if img == nil {
		return
	}
	col0, row0 := dst.Min.X/unitsPerCol, dst.Min.Y/unitsPerRow
	cols, rows := dst.Dx()/unitsPerCol, dst.Dy()/unitsPerRow
	if cols <= 0 || rows <= 0 {
		return
	}
	b := img.Bounds()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			sx := b.Min.X + c*b.Dx()/cols
			top := img.At(sx, b.Min.Y+(2*r)*b.Dy()/(2*rows))
			bottom := img.At(sx, b.Min.Y+(2*r+1)*b.Dy()/(2*rows))
			style := tcell.StyleDefault.Foreground(toColor(top)).Background(toColor(bottom))
			t.screen.SetContent(col0+c, row0+r, '▀', nil, style)
		}
	}
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
