package audio

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/require"
)

func silentManager(t *testing.T) *SoundManager {
	t.Helper()
	buffers := make(map[Cue]*beep.Buffer)
	for cue := range DefaultFiles {
		buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
		buf.Append(beep.Silence(128))
		buffers[cue] = buf
	}
	sm := newSoundManager(buffers)
	sm.locker = &sync.Mutex{}
	return sm
}

func TestPlayBeforeInitializeIsSilent(t *testing.T) {
	sm := silentManager(t)
	sm.Play(CueFood)
	sm.Play(CueLobby)
	require.Zero(t, sm.mixer.Len())
	require.False(t, sm.Enabled())
}

func TestLobbyDoesNotStack(t *testing.T) {
	sm := silentManager(t)
	sm.initialized = true

	sm.Play(CueLobby)
	sm.Play(CueLobby)
	require.Equal(t, 1, sm.mixer.Len())
	require.NotNil(t, sm.lobby)

	sm.Stop(CueLobby)
	require.Nil(t, sm.lobby)

	sm.Play(CueLobby)
	require.NotNil(t, sm.lobby)
}

func TestOneShotsMix(t *testing.T) {
	sm := silentManager(t)
	sm.initialized = true

	sm.Play(CueMove)
	sm.Play(CueFood)
	sm.Play(CueGameOver)
	require.Equal(t, 3, sm.mixer.Len())

	// Stopping a one-shot is a no-op.
	sm.Stop(CueFood)
	require.Equal(t, 3, sm.mixer.Len())

	sm.Cleanup()
	require.Zero(t, sm.mixer.Len())
	require.False(t, sm.Enabled())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir(), DefaultFiles)
	require.Error(t, err)
}

func TestLoadNoFiles(t *testing.T) {
	sm, err := Load(filepath.Join(t.TempDir(), "none"), nil)
	require.NoError(t, err)
	sm.initialized = true
	sm.locker = &sync.Mutex{}
	sm.Play(CueFood)
	require.Zero(t, sm.mixer.Len())
}

func TestCueNames(t *testing.T) {
	require.Equal(t, "lobby", CueLobby.String())
	require.Equal(t, "game-over", CueGameOver.String())
	require.Equal(t, "unknown", Cue(42).String())
}
