package audio

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Cue identifies one of the game's sounds.
type Cue int

const (
	CueLobby Cue = iota
	CueMove
	CueFood
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueLobby:
		return "lobby"
	case CueMove:
		return "move"
	case CueFood:
		return "food"
	case CueGameOver:
		return "game-over"
	}
	return "unknown"
}

// DefaultFiles maps each cue to its file name in the assets directory.
var DefaultFiles = map[Cue]string{
	CueLobby:    "turk.mp3",
	CueMove:     "music_move.mp3",
	CueFood:     "music_food.mp3",
	CueGameOver: "music_gameover.mp3",
}

// SoundManager manages all game audio. The lobby cue loops until stopped;
// the other cues are one-shots mixed over whatever is playing.
type SoundManager struct {
	mu          sync.Mutex
	locker      sync.Locker
	buffers     map[Cue]*beep.Buffer
	lobby       *beep.Ctrl
	mixer       *beep.Mixer
	initialized bool
}

// Load decodes every cue file from dir.
func Load(dir string, files map[Cue]string) (*SoundManager, error) {
	buffers := make(map[Cue]*beep.Buffer, len(files))
	for cue, name := range files {
		buf, err := decode(filepath.Join(dir, name))
		if err != nil {
			return nil, errors.Wrapf(err, "load %s sound", cue)
		}
		buffers[cue] = buf
	}
	return newSoundManager(buffers), nil
}

func newSoundManager(buffers map[Cue]*beep.Buffer) *SoundManager {
	return &SoundManager{
		locker:  speakerLocker{},
		buffers: buffers,
		mixer:   &beep.Mixer{},
	}
}

func decode(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	if format.SampleRate == sampleRate {
		buf.Append(streamer)
	} else {
		buf.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
	}
	return buf, nil
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether cues reach the speaker.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play starts cue. Playing the lobby while it already runs does nothing.
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	buf, ok := sm.buffers[cue]
	if !ok || buf.Len() == 0 {
		return
	}

	sm.locker.Lock()
	defer sm.locker.Unlock()

	if cue == CueLobby {
		if sm.lobby != nil {
			return
		}
		sm.lobby = &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}
		sm.mixer.Add(sm.lobby)
		return
	}
	sm.mixer.Add(buf.Streamer(0, buf.Len()))
}

// Stop halts cue. Only the looping lobby cue can be stopped; one-shots run out.
func (sm *SoundManager) Stop(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if cue != CueLobby || sm.lobby == nil {
		return
	}
	// A Ctrl without a streamer is dropped by the mixer on its next read.
	sm.locker.Lock()
	sm.lobby.Streamer = nil
	sm.locker.Unlock()
	sm.lobby = nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.locker.Lock()
	sm.mixer.Clear()
	sm.locker.Unlock()
	sm.lobby = nil
	sm.initialized = false
}

// speakerLocker guards the mixer against the speaker's playback goroutine.
type speakerLocker struct{}

func (speakerLocker) Lock()   { speaker.Lock() }
func (speakerLocker) Unlock() { speaker.Unlock() }
