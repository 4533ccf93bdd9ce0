// Package app runs the game as a single state machine: each frame polls the
// frontend, dispatches key presses to the current screen, advances the
// simulation and renders.
package app

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/media/audio"
	"snake-arcade/media/clip"
)

// Screen is the state of the application.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenPlaying
	ScreenGameOver
	ScreenQuit
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game-over"
	case ScreenQuit:
		return "quit"
	}
	return "unknown"
}

// Audio plays the game's sound cues.
type Audio interface {
	Play(audio.Cue)
	Stop(audio.Cue)
}

// Context bundles the long-lived handles every screen works with. It is
// built once at startup.
type Context struct {
	Frontend   Frontend
	Audio      Audio
	Clip       *clip.Playback
	Scores     *manager.StateManager
	Rand       *rand.Rand
	Grid       types.Grid
	Obstacles  int
	StrictTail bool
	Log        *log.Entry
}

type App struct {
	ctx        Context
	screen     Screen
	difficulty types.Difficulty
	session    *game.Game
	clock      *game.Clock
	now        func() time.Time
}

func New(ctx Context) *App {
	if ctx.Scores == nil {
		ctx.Scores = manager.NewStateManager()
	}
	if ctx.Audio == nil {
		ctx.Audio = silent{}
	}
	if ctx.Rand == nil {
		ctx.Rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if ctx.Grid == (types.Grid{}) {
		ctx.Grid = types.DefaultGrid()
	}
	if ctx.Log == nil {
		ctx.Log = log.NewEntry(log.StandardLogger())
	}
	return &App{
		ctx:    ctx,
		screen: ScreenMenu,
		now:    time.Now,
	}
}

// Run shows the menu and loops frames until the player quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.enterMenu()
	last := a.now()
	for a.screen != ScreenQuit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		now := a.now()
		a.Frame(now.Sub(last))
		last = now
	}
	return nil
}

// Frame runs one poll-dispatch-update-render cycle.
func (a *App) Frame(elapsed time.Duration) Screen {
	in := a.ctx.Frontend.Poll()
	if in.Close {
		a.ctx.Log.Info("window closed")
		a.screen = ScreenQuit
		return a.screen
	}

	before := a.screen
	for _, k := range in.Keys {
		a.handleKey(k)
		if a.screen != before {
			break
		}
	}
	if a.screen == before {
		a.update(elapsed)
	}
	if a.screen != ScreenQuit {
		a.render()
	}
	return a.screen
}

func (a *App) Screen() Screen {
	return a.screen
}

// Session is the current or last played session, nil before the first one.
func (a *App) Session() *game.Game {
	return a.session
}

func (a *App) Difficulty() types.Difficulty {
	return a.difficulty
}

func (a *App) BestScore() int {
	return a.ctx.Scores.GetHighScore()
}

func (a *App) handleKey(k Key) {
	switch a.screen {
	case ScreenMenu:
		switch k {
		case KeyE:
			a.start(types.Easy)
		case KeyM:
			a.start(types.Medium)
		case KeyH:
			a.start(types.Hard)
		}
	case ScreenPlaying:
		if dir := directionFor(k); dir != types.NoDirection {
			a.session.Steer(dir)
		}
	case ScreenGameOver:
		switch k {
		case KeyR:
			a.start(a.difficulty)
		case KeyQ:
			a.ctx.Log.Info("quit from game over screen")
			a.screen = ScreenQuit
		case KeyM:
			a.enterMenu()
		}
	}
}

func (a *App) enterMenu() {
	a.screen = ScreenMenu
	a.ctx.Clip.Rewind()
	a.ctx.Audio.Play(audio.CueLobby)
}

func (a *App) start(d types.Difficulty) {
	a.ctx.Audio.Stop(audio.CueLobby)
	a.difficulty = d
	a.session = game.NewGame(game.Options{
		Grid:       a.ctx.Grid,
		Difficulty: d,
		Obstacles:  a.ctx.Obstacles,
		StrictTail: a.ctx.StrictTail,
		Rand:       a.ctx.Rand,
	})
	a.clock = game.NewClock(d.Interval())
	a.screen = ScreenPlaying

	a.ctx.Log.WithFields(log.Fields{
		"session":    a.session.UUID,
		"difficulty": d.Name,
		"rate":       d.TicksPerSecond,
	}).Info("session started")
}

func (a *App) update(elapsed time.Duration) {
	switch a.screen {
	case ScreenMenu:
		a.ctx.Clip.Advance(elapsed)
	case ScreenPlaying:
		for i := a.clock.Advance(elapsed); i > 0; i-- {
			res := a.session.Update()
			if res.Moved {
				a.ctx.Audio.Play(audio.CueMove)
			}
			if res.Ate {
				a.ctx.Audio.Play(audio.CueFood)
			}
			if res.Collision != manager.NoCollision {
				a.endSession()
				return
			}
		}
	}
}

func (a *App) endSession() {
	a.ctx.Audio.Play(audio.CueGameOver)
	summary := a.session.Summary()
	best := a.ctx.Scores.RecordSession(summary.Score)
	a.screen = ScreenGameOver

	a.ctx.Log.WithFields(log.Fields{
		"session":    summary.UUID,
		"difficulty": summary.Difficulty,
		"score":      summary.Score,
		"steps":      summary.Steps,
		"cause":      summary.Cause,
		"best":       a.ctx.Scores.GetHighScore(),
		"new_best":   best,
		"played":     a.ctx.Scores.GamesPlayed(),
		"average":    a.ctx.Scores.GetAverageScore(),
		"median":     a.ctx.Scores.GetMedianScore(),
	}).Info("session over")
}

func (a *App) render() {
	fe := a.ctx.Frontend
	fe.BeginFrame()
	switch a.screen {
	case ScreenMenu:
		fe.DrawMenu(MenuView{
			Frame: a.ctx.Clip.Index(),
			Image: a.ctx.Clip.Frame(),
		})
	case ScreenPlaying:
		fe.DrawPlaying(PlayView{
			Snake:     a.session.GetSnake().Segments(),
			Food:      a.session.GetFood(),
			Obstacles: a.session.GetObstacles(),
			Score:     a.session.Score,
			Cell:      a.ctx.Grid.Cell,
		})
	case ScreenGameOver:
		fe.DrawGameOver(GameOverView{
			Score: a.session.Score,
			Best:  a.ctx.Scores.GetHighScore(),
		})
	}
	fe.EndFrame()
}

type silent struct{}

func (silent) Play(audio.Cue) {}
func (silent) Stop(audio.Cue) {}
