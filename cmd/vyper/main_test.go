package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.vvm.dev/vvm/internal/app"
	"go.vvm.dev/vvm/internal/core/domain"
	"go.vvm.dev/vvm/internal/core/ports/mocks"
)

type testMocks struct {
	store    *mocks.MockVersionStore
	cache    *mocks.MockOutcomeCache
	runner   *mocks.MockRunner
	digester *mocks.MockDigester
	logger   *mocks.MockLogger
}

func newTestProvider(ctrl *gomock.Controller) (ComponentProvider, *testMocks) {
	m := &testMocks{
		store:    mocks.NewMockVersionStore(ctrl),
		cache:    mocks.NewMockOutcomeCache(ctrl),
		runner:   mocks.NewMockRunner(ctrl),
		digester: mocks.NewMockDigester(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	application := app.New(mocks.NewMockIndexClient(ctrl), m.store, m.cache, m.runner, m.digester, m.logger)
	components := &app.Components{App: application, Logger: m.logger}
	return func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}, m
}

func TestRun_ForwardsStreamsAndExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider, m := newTestProvider(ctrl)
	active := domain.Version{ID: "0.3.10", BinaryPath: "/home/.vvm/0.3.10/vyper-0.3.10"}
	m.store.EXPECT().ResolveActive().Return(active, nil)
	m.runner.EXPECT().Run(gomock.Any(), active.BinaryPath, []string{"--version"}).
		Return(domain.Outcome{ExitCode: 0, Stdout: []byte("0.3.10+commit.91361694\n")}, nil)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"--version"}, stdout, stderr, provider)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "0.3.10+commit.91361694\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_CompilerFailurePassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider, m := newTestProvider(ctrl)
	active := domain.Version{ID: "0.3.10", BinaryPath: "/home/.vvm/0.3.10/vyper-0.3.10"}
	m.store.EXPECT().ResolveActive().Return(active, nil)
	m.digester.EXPECT().ContentDigest("broken.vy").Return("", errors.New("no such file"))
	m.runner.EXPECT().Run(gomock.Any(), active.BinaryPath, []string{"broken.vy"}).
		Return(domain.Outcome{ExitCode: 2, Stderr: []byte("FileNotFoundError\n")}, nil)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"broken.vy"}, stdout, stderr, provider)

	assert.Equal(t, 2, exitCode)
	assert.Empty(t, stdout.String())
	assert.Equal(t, "FileNotFoundError\n", stderr.String())
}

func TestRun_CacheHitServedWithoutSpawning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider, m := newTestProvider(ctrl)
	active := domain.Version{ID: "0.3.10", BinaryPath: "/home/.vvm/0.3.10/vyper-0.3.10"}
	m.store.EXPECT().ResolveActive().Return(active, nil)
	m.digester.EXPECT().ContentDigest("token.vy").Return("abc123", nil)
	m.cache.EXPECT().Lookup("0.3.10", "abc123").
		Return(&domain.Outcome{ExitCode: 0, Stdout: []byte("0xbytecode\n")}, nil)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"token.vy"}, stdout, stderr, provider)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "0xbytecode\n", stdout.String())
}

func TestRun_NoActiveVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider, m := newTestProvider(ctrl)
	m.store.EXPECT().ResolveActive().Return(domain.Version{}, domain.ErrNoActiveVersion)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"token.vy"}, stdout, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "no active version")
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), nil, stdout, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "init failed")
}
