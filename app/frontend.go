package app

import (
	"fmt"
	"image"

	"snake-arcade/game/types"
)

// Key is a frontend independent key press.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyE
	KeyM
	KeyH
	KeyR
	KeyQ
)

// InputFrame is everything the player did since the previous frame.
type InputFrame struct {
	Keys  []Key
	Close bool
}

// Frontend is a window or terminal the game is played on. Poll must not
// block. Draw calls happen between BeginFrame and EndFrame; EndFrame
// presents the frame and paces the loop.
type Frontend interface {
	Poll() InputFrame
	BeginFrame()
	DrawMenu(MenuView)
	DrawPlaying(PlayView)
	DrawGameOver(GameOverView)
	EndFrame()
}

type MenuView struct {
	Frame int
	Image *image.RGBA
}

type PlayView struct {
	Snake     []types.Point
	Food      types.Point
	Obstacles []types.Point
	Score     int
	Cell      int
}

type GameOverView struct {
	Score int
	Best  int
}

// Text shown by every frontend.
const (
	TitleText        = "Welcome to the SNAKE GAME!"
	InstructionsText = "Choose Difficulty: E (Easy) / M (Medium) / H (Hard)"
	CreditText       = "Created by TURKIC GROUP"
	RestartText      = "Press R to Restart, Q to Quit, or M for Menu"
	WindowTitle      = "Snake Game"
)

func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

func GameOverText(score int) string {
	return fmt.Sprintf("Game Over! Score: %d", score)
}

func BestScoreText(best int) string {
	return fmt.Sprintf("Best Score: %d", best)
}

func directionFor(k Key) types.Direction {
	switch k {
	case KeyUp:
		return types.Up
	case KeyDown:
		return types.Down
	case KeyLeft:
		return types.Left
	case KeyRight:
		return types.Right
	}
	return types.NoDirection
}
