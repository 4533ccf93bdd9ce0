package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/app"
	"snake-arcade/game/types"
)

const (
	logoSize  = 80
	badgeSize = 150
)

var menuLayout = struct {
	clip, logo, badge rl.Rectangle
}{
	clip:  rl.NewRectangle(250, 150, 300, 200),
	logo:  rl.NewRectangle(10, types.ScreenHeight-90, logoSize, logoSize),
	badge: rl.NewRectangle(types.ScreenWidth-160, types.ScreenHeight-160, badgeSize, badgeSize),
}

var gameOverLayout = struct {
	logo, badge rl.Rectangle
}{
	logo:  rl.NewRectangle(10, types.ScreenHeight-logoSize-10, logoSize, logoSize),
	badge: rl.NewRectangle(types.ScreenWidth-150, types.ScreenHeight-130, badgeSize, badgeSize),
}

var keyMap = map[int32]app.Key{
	rl.KeyUp:    app.KeyUp,
	rl.KeyDown:  app.KeyDown,
	rl.KeyLeft:  app.KeyLeft,
	rl.KeyRight: app.KeyRight,
	rl.KeyE:     app.KeyE,
	rl.KeyM:     app.KeyM,
	rl.KeyH:     app.KeyH,
	rl.KeyR:     app.KeyR,
	rl.KeyQ:     app.KeyQ,
}

func translateKey(k int32) app.Key {
	if key, ok := keyMap[k]; ok {
		return key
	}
	return app.KeyNone
}
