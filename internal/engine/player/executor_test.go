package player_test

import (
	"context"
	"os"
	"testing"

	"dacsmoke/internal/core/domain"
	"dacsmoke/internal/core/ports/mocks"
	"dacsmoke/internal/engine/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func pipelineLocator(ctrl *gomock.Controller) *mocks.MockLocator {
	loc := mocks.NewMockLocator(ctrl)
	loc.EXPECT().Look("ffmpeg").Return("/usr/bin/ffmpeg", true).AnyTimes()
	loc.EXPECT().Look("aplay").Return("/usr/bin/aplay", true).AnyTimes()
	return loc
}

func TestExecutor_Simple(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	loc := mocks.NewMockLocator(ctrl)
	argv := []string{"/usr/bin/mpg123", "/a.mp3"}

	runner.EXPECT().Run(gomock.Any(), argv).Return(0, nil)

	e := player.NewExecutor(runner, loc)
	status, err := e.Execute(context.Background(), domain.Simple{Backend: "mpg123", Argv: argv})
	require.NoError(t, err)
	assert.Equal(t, 0, status)
}

func TestExecutor_Simple_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	argv := []string{"/usr/bin/mpg123", "/a.mp3"}
	runner.EXPECT().Run(gomock.Any(), argv).Return(1, nil)

	e := player.NewExecutor(runner, mocks.NewMockLocator(ctrl))
	status, err := e.Execute(context.Background(), domain.Simple{Backend: "mpg123", Argv: argv})
	require.NoError(t, err)
	assert.Equal(t, 1, status)
}

func TestExecutor_Simple_LaunchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	argv := []string{"/usr/bin/mpg123", "/a.mp3"}
	runner.EXPECT().Run(gomock.Any(), argv).Return(0, zerr.New("executable vanished"))

	e := player.NewExecutor(runner, mocks.NewMockLocator(ctrl))
	_, err := e.Execute(context.Background(), domain.Simple{Backend: "mpg123", Argv: argv})
	require.Error(t, err)
}

// decodeMatcher matches the ffmpeg decode command regardless of the
// temporary wav path it ends with.
type argvPrefix []string

func (m argvPrefix) Matches(x any) bool {
	argv, ok := x.([]string)
	if !ok || len(argv) < len(m) {
		return false
	}
	for i, want := range m {
		if argv[i] != want {
			return false
		}
	}
	return true
}

func (m argvPrefix) String() string { return "argv with expected prefix" }

func decodePrefix() argvPrefix {
	return argvPrefix{
		"/usr/bin/ffmpeg",
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-i", "/a.mp3",
		"-ac", "2",
		"-ar", "44100",
	}
}

func TestExecutor_Pipeline_DecodeThenPlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), decodePrefix()).Return(0, nil),
		runner.EXPECT().Run(gomock.Any(), argvPrefix{"/usr/bin/aplay", "-D", "plughw:1,0"}).Return(0, nil),
	)

	e := player.NewExecutor(runner, pipelineLocator(ctrl))
	status, err := e.Execute(context.Background(), domain.Pipeline{
		File:   "/a.mp3",
		Device: "plughw:1,0",
		Loops:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, status)
}

func TestExecutor_Pipeline_DefaultDeviceOmitsFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), decodePrefix()).Return(0, nil),
		runner.EXPECT().Run(gomock.Any(), gomock.Not(argvPrefix{"/usr/bin/aplay", "-D"})).Return(0, nil),
	)

	e := player.NewExecutor(runner, pipelineLocator(ctrl))
	status, err := e.Execute(context.Background(), domain.Pipeline{
		File:   "/a.mp3",
		Device: "default",
		Loops:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, status)
}

func TestExecutor_Pipeline_DecodeFailureShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	// Decode fails with 5; no play attempt may follow.
	runner.EXPECT().Run(gomock.Any(), decodePrefix()).Return(5, nil)

	e := player.NewExecutor(runner, pipelineLocator(ctrl))
	status, err := e.Execute(context.Background(), domain.Pipeline{
		File:   "/a.mp3",
		Device: "default",
		Loops:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, status)
}

func TestExecutor_Pipeline_TempDirRemovedOnDecodeFailure(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), decodePrefix()).Return(5, nil)

	e := player.NewExecutor(runner, pipelineLocator(ctrl))
	status, err := e.Execute(context.Background(), domain.Pipeline{
		File:   "/a.mp3",
		Device: "default",
		Loops:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, status)

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, entries, "scratch directory must be removed after a failed decode")
}

func TestExecutor_Pipeline_TempDirRemovedAfterPlayback(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), decodePrefix()).Return(0, nil),
		runner.EXPECT().Run(gomock.Any(), argvPrefix{"/usr/bin/aplay"}).Return(0, nil),
	)

	e := player.NewExecutor(runner, pipelineLocator(ctrl))
	status, err := e.Execute(context.Background(), domain.Pipeline{
		File:   "/a.mp3",
		Device: "default",
		Loops:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, status)

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, entries, "scratch directory must be removed after playback")
}

func TestExecutor_Pipeline_LoopCountPlays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), decodePrefix()).Return(0, nil),
		runner.EXPECT().Run(gomock.Any(), argvPrefix{"/usr/bin/aplay"}).Return(0, nil),
		runner.EXPECT().Run(gomock.Any(), argvPrefix{"/usr/bin/aplay"}).Return(0, nil),
		runner.EXPECT().Run(gomock.Any(), argvPrefix{"/usr/bin/aplay"}).Return(0, nil),
	)

	e := player.NewExecutor(runner, pipelineLocator(ctrl))
	status, err := e.Execute(context.Background(), domain.Pipeline{
		File:   "/a.mp3",
		Device: "default",
		Loops:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, status)
}

func TestExecutor_Pipeline_PlayFailureStopsLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), decodePrefix()).Return(0, nil),
		runner.EXPECT().Run(gomock.Any(), argvPrefix{"/usr/bin/aplay"}).Return(0, nil),
		runner.EXPECT().Run(gomock.Any(), argvPrefix{"/usr/bin/aplay"}).Return(9, nil),
	)

	e := player.NewExecutor(runner, pipelineLocator(ctrl))
	status, err := e.Execute(context.Background(), domain.Pipeline{
		File:   "/a.mp3",
		Device: "default",
		Loops:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, 9, status)
}

func TestExecutor_Pipeline_InfiniteStopsOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), decodePrefix()).Return(0, nil),
		runner.EXPECT().Run(gomock.Any(), argvPrefix{"/usr/bin/aplay"}).Return(0, nil),
		runner.EXPECT().Run(gomock.Any(), argvPrefix{"/usr/bin/aplay"}).Return(0, nil),
		runner.EXPECT().Run(gomock.Any(), argvPrefix{"/usr/bin/aplay"}).Return(4, nil),
	)

	e := player.NewExecutor(runner, pipelineLocator(ctrl))
	status, err := e.Execute(context.Background(), domain.Pipeline{
		File:   "/a.mp3",
		Device: "default",
		Loops:  -1,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, status)
}

func TestExecutor_Pipeline_VanishedTools(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loc := mocks.NewMockLocator(ctrl)
	loc.EXPECT().Look("ffmpeg").Return("", false)
	loc.EXPECT().Look("aplay").Return("/usr/bin/aplay", true).AnyTimes()

	e := player.NewExecutor(mocks.NewMockRunner(ctrl), loc)
	status, err := e.Execute(context.Background(), domain.Pipeline{
		File:   "/a.mp3",
		Device: "default",
		Loops:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ExitNoBackend, status)
}
