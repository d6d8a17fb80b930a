package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"dacsmoke/internal/app"
	"dacsmoke/internal/core/domain"
	"dacsmoke/internal/core/ports"
	"dacsmoke/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// testHarness builds a real App over mocked ports and a provider for run.
type testHarness struct {
	files    *mocks.MockFiles
	prober   *mocks.MockProber
	platform *mocks.MockPlatform
	locator  *mocks.MockLocator
	executor *mocks.MockExecutor
	logger   *mocks.MockLogger
	provider ComponentProvider
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &testHarness{
		files:    mocks.NewMockFiles(ctrl),
		prober:   mocks.NewMockProber(ctrl),
		platform: mocks.NewMockPlatform(ctrl),
		locator:  mocks.NewMockLocator(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	application := app.New(h.files, h.prober, h.platform, h.locator, h.executor, h.logger)
	h.provider = func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: h.logger,
		}, func() {}, nil
	}
	return h
}

// silence redirects the application streams during the test.
func silence(a *app.App) {
	a.WithOutput(io.Discard, io.Discard)
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	h := newHarness(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, h.provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_FileNotFound verifies the dedicated exit status for a missing file.
func TestRun_FileNotFound(t *testing.T) {
	h := newHarness(t)

	h.files.EXPECT().
		Resolve("nope.mp3").
		Return(ports.FileInfo{}, domain.ErrFileNotFound)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"play", "--file", "nope.mp3"}, stderr, h.provider, silence)
	assert.Equal(t, 2, exitCode)
}

// TestRun_NoBackend verifies the exit status when no playback tool is installed.
func TestRun_NoBackend(t *testing.T) {
	h := newHarness(t)

	h.files.EXPECT().Resolve(gomock.Any()).Return(ports.FileInfo{Path: "/music/track1.mp3"}, nil)
	h.prober.EXPECT().ListCards(gomock.Any()).Return("")
	h.prober.EXPECT().ListPCMs(gomock.Any()).Return("")
	h.platform.EXPECT().IsRaspberryPi().Return(false)
	h.locator.EXPECT().Look(gomock.Any()).Return("", false).AnyTimes()

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"play"}, stderr, h.provider, silence)
	assert.Equal(t, 127, exitCode)
}

// TestRun_AllBackendsFailed verifies the exit status when every backend fails.
func TestRun_AllBackendsFailed(t *testing.T) {
	h := newHarness(t)

	h.files.EXPECT().Resolve(gomock.Any()).Return(ports.FileInfo{Path: "/music/track1.mp3"}, nil)
	h.prober.EXPECT().ListCards(gomock.Any()).Return("")
	h.prober.EXPECT().ListPCMs(gomock.Any()).Return("")
	h.platform.EXPECT().IsRaspberryPi().Return(false)
	h.locator.EXPECT().
		Look(gomock.Any()).
		DoAndReturn(func(name string) (string, bool) {
			if name == "mpg123" {
				return "/usr/bin/mpg123", true
			}
			return "", false
		}).
		AnyTimes()
	h.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(1, nil)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"play"}, stderr, h.provider, silence)
	assert.Equal(t, 1, exitCode)
}

// TestRun_PipelineStatusPropagated verifies that the pipeline child status
// becomes the process exit status verbatim.
func TestRun_PipelineStatusPropagated(t *testing.T) {
	h := newHarness(t)

	h.files.EXPECT().Resolve(gomock.Any()).Return(ports.FileInfo{Path: "/music/track1.mp3"}, nil)
	h.prober.EXPECT().ListCards(gomock.Any()).Return("")
	h.prober.EXPECT().ListPCMs(gomock.Any()).Return("")
	h.platform.EXPECT().IsRaspberryPi().Return(false)
	h.locator.EXPECT().
		Look(gomock.Any()).
		DoAndReturn(func(name string) (string, bool) {
			if name == "ffmpeg" || name == "aplay" {
				return "/usr/bin/" + name, true
			}
			return "", false
		}).
		AnyTimes()
	h.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(42, nil)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"play"}, stderr, h.provider, silence)
	assert.Equal(t, 42, exitCode)
}
