package main

import (
	"context"
	"image"
	_ "image/png"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"snake-arcade/app"
	"snake-arcade/config"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/media/audio"
	"snake-arcade/media/clip"
	"snake-arcade/ui"
	"snake-arcade/ui/terminal"
)

var cfg = config.FromEnv()

var rootCmd = &cobra.Command{
	Use:          "snake",
	Short:        "snake is an arcade snake game with obstacles and three difficulties",
	SilenceUsage: true,
	RunE: func(c *cobra.Command, args []string) error {
		return run(c.Context())
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&cfg.Assets, "assets", cfg.Assets, "directory holding sounds, images and the background clip")
	flags.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "where to draw the game: raylib or terminal")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for food and obstacles (0 = time based)")
	flags.IntVar(&cfg.Obstacles, "obstacles", cfg.Obstacles, "obstacles generated per session")
	flags.BoolVar(&cfg.Mute, "mute", cfg.Mute, "do not open the audio device")
	flags.BoolVar(&cfg.StrictTail, "strict-tail", cfg.StrictTail, "treat the cell the tail is leaving as occupied")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file instead of stderr")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()
	entry := log.WithField("frontend", cfg.Frontend)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	video, err := clip.Open(cfg.AssetPath(config.ClipFile))
	if err != nil {
		entry.WithError(err).Error("cannot open video file")
		return err
	}
	entry.WithField("frames", video.Len()).Debug("video loaded")

	sounds, err := audio.Load(cfg.Assets, audio.DefaultFiles)
	if err != nil {
		return err
	}
	if !cfg.Mute {
		if err := sounds.Initialize(); err != nil {
			entry.WithError(err).Warn("no audio backend, playing silently")
		}
	}
	defer sounds.Cleanup()

	frontend, closeFrontend, err := openFrontend(video, entry)
	if err != nil {
		return err
	}
	defer closeFrontend()

	a := app.New(app.Context{
		Frontend:   frontend,
		Audio:      sounds,
		Clip:       clip.NewPlayback(video),
		Scores:     manager.NewStateManager(),
		Rand:       rand.New(rand.NewSource(seed)),
		Grid:       types.DefaultGrid(),
		Obstacles:  cfg.Obstacles,
		StrictTail: cfg.StrictTail,
		Log:        entry.WithField("seed", seed),
	})
	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	entry.Info("bye")
	return nil
}

func openFrontend(video *clip.Clip, entry *log.Entry) (app.Frontend, func(), error) {
	switch cfg.Frontend {
	case config.FrontendTerminal:
		logo, err := loadImage(cfg.AssetPath(config.LogoFile))
		if err != nil {
			return nil, nil, err
		}
		badge, err := loadImage(cfg.AssetPath(config.BadgeFile))
		if err != nil {
			return nil, nil, err
		}
		s, err := terminal.Open(logo, badge, entry)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		r, err := ui.NewRenderer(ui.Assets{
			Logo:  cfg.AssetPath(config.LogoFile),
			Badge: cfg.AssetPath(config.BadgeFile),
			Clip:  video,
		}, entry)
		if err != nil {
			return nil, nil, err
		}
		return r, r.Close, nil
	}
}

func setupLogging() (func(), error) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(cfg.Level())

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, errors.Wrap(err, "open log file")
		}
		log.SetOutput(f)
		return func() { f.Close() }, nil
	case cfg.Frontend == config.FrontendTerminal:
		// The terminal belongs to the game.
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
	}
	return func() {}, nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open image %s", path)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode image %s", path)
	}
	return img, nil
}
