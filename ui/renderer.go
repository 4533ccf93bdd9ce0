package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"snake-arcade/app"
	"snake-arcade/game/types"
	"snake-arcade/media/clip"
)

const targetFPS = 60

var (
	snakeColor    = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	foodColor     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	obstacleColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	titleColor    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	textColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Assets are the files the window loads at startup.
type Assets struct {
	Logo  string
	Badge string
	Clip  *clip.Clip
}

// Renderer draws the game in an 800x600 raylib window.
type Renderer struct {
	screenWidth  int32
	screenHeight int32
	logo         rl.Texture2D
	badge        rl.Texture2D
	clipFrames   []rl.Texture2D
	log          *log.Entry
}

// NewRenderer opens the window and uploads every texture.
func NewRenderer(assets Assets, logger *log.Entry) (*Renderer, error) {
	rl.InitWindow(types.ScreenWidth, types.ScreenHeight, app.WindowTitle)
	rl.SetTargetFPS(targetFPS)
	// Only a close request ends the game, never Escape.
	rl.SetExitKey(0)

	r := &Renderer{
		screenWidth:  types.ScreenWidth,
		screenHeight: types.ScreenHeight,
		log:          logger,
	}

	var err error
	if r.logo, err = loadTexture(assets.Logo); err != nil {
		r.Close()
		return nil, err
	}
	if r.badge, err = loadTexture(assets.Badge); err != nil {
		r.Close()
		return nil, err
	}
	for _, frame := range assets.Clip.Frames {
		img := rl.NewImageFromImage(frame)
		r.clipFrames = append(r.clipFrames, rl.LoadTextureFromImage(img))
		rl.UnloadImage(img)
	}
	logger.WithField("frames", len(r.clipFrames)).Debug("video frames uploaded")
	return r, nil
}

func loadTexture(path string) (rl.Texture2D, error) {
	if !rl.FileExists(path) {
		return rl.Texture2D{}, errors.Errorf("image %s not found", path)
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return rl.Texture2D{}, errors.Errorf("cannot load image %s", path)
	}
	return tex, nil
}

// Close releases textures and the window.
func (r *Renderer) Close() {
	for _, tex := range r.clipFrames {
		rl.UnloadTexture(tex)
	}
	r.clipFrames = nil
	if r.logo.ID != 0 {
		rl.UnloadTexture(r.logo)
	}
	if r.badge.ID != 0 {
		rl.UnloadTexture(r.badge)
	}
	rl.CloseWindow()
}

// Poll drains raylib's key queue. Must be called after the previous
// EndDrawing so the queue holds this frame's presses.
func (r *Renderer) Poll() app.InputFrame {
	in := app.InputFrame{Close: rl.WindowShouldClose()}
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		if key := translateKey(k); key != app.KeyNone {
			in.Keys = append(in.Keys, key)
		}
	}
	return in
}

func (r *Renderer) BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
}

func (r *Renderer) EndFrame() {
	rl.EndDrawing()
}

func (r *Renderer) DrawMenu(v app.MenuView) {
	if v.Frame >= 0 && v.Frame < len(r.clipFrames) {
		drawScaled(r.clipFrames[v.Frame], menuLayout.clip)
	}
	rl.DrawText(app.TitleText, r.screenWidth/6, r.screenHeight/9, 60, titleColor)
	rl.DrawText(app.InstructionsText, 200, 420, 30, textColor)

	drawScaled(r.logo, menuLayout.logo)
	rl.DrawText(app.CreditText, 100, r.screenHeight-50, 30, textColor)
	drawScaled(r.badge, menuLayout.badge)
}

func (r *Renderer) DrawPlaying(v app.PlayView) {
	cell := int32(v.Cell)
	for _, o := range v.Obstacles {
		rl.DrawRectangle(int32(o.X), int32(o.Y), cell, cell, obstacleColor)
	}
	rl.DrawRectangle(int32(v.Food.X), int32(v.Food.Y), cell, cell, foodColor)
	for _, p := range v.Snake {
		rl.DrawRectangle(int32(p.X), int32(p.Y), cell, cell, snakeColor)
	}
	rl.DrawText(app.ScoreText(v.Score), 10, 10, 30, textColor)
}

func (r *Renderer) DrawGameOver(v app.GameOverView) {
	x := r.screenWidth / 4
	y := r.screenHeight / 3
	rl.DrawText(app.GameOverText(v.Score), x, y, 40, titleColor)
	rl.DrawText(app.BestScoreText(v.Best), x, y+50, 40, textColor)
	rl.DrawText(app.RestartText, x-40, y+100, 40, textColor)

	drawScaled(r.logo, gameOverLayout.logo)
	drawScaled(r.badge, gameOverLayout.badge)
	rl.DrawText(app.CreditText, 100, r.screenHeight-30, 30, textColor)
}

func drawScaled(tex rl.Texture2D, dst rl.Rectangle) {
	if tex.ID == 0 {
		return
	}
	src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	rl.DrawTexturePro(tex, src, dst, rl.NewVector2(0, 0), 0, rl.White)
}
