package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.vvm.dev/vvm/cmd/vvm/commands"
	"go.vvm.dev/vvm/internal/app"
	"go.vvm.dev/vvm/internal/core/domain"
)

type mockApp struct {
	listFunc      func(ctx context.Context, opts app.ListOptions) (app.Snapshot, error)
	installFunc   func(ctx context.Context, versions []string) error
	useFunc       func(version string) error
	removeFunc    func(version string) error
	removeAllFunc func() error
}

func (m *mockApp) List(ctx context.Context, opts app.ListOptions) (app.Snapshot, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return app.Snapshot{}, nil
}

func (m *mockApp) Install(ctx context.Context, versions []string) error {
	if m.installFunc != nil {
		return m.installFunc(ctx, versions)
	}
	return nil
}

func (m *mockApp) Use(version string) error {
	if m.useFunc != nil {
		return m.useFunc(version)
	}
	return nil
}

func (m *mockApp) Remove(version string) error {
	if m.removeFunc != nil {
		return m.removeFunc(version)
	}
	return nil
}

func (m *mockApp) RemoveAll() error {
	if m.removeAllFunc != nil {
		return m.removeAllFunc()
	}
	return nil
}

func execute(t *testing.T, mock *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetArgs(args)
	cli.SetOutput(buf, buf)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_List(t *testing.T) {
	t.Run("wires the no-cache flag", func(t *testing.T) {
		var captured app.ListOptions
		mock := &mockApp{
			listFunc: func(_ context.Context, opts app.ListOptions) (app.Snapshot, error) {
				captured = opts
				return app.Snapshot{}, nil
			},
		}

		_, err := execute(t, mock, "list", "--no-cache")
		require.NoError(t, err)
		assert.True(t, captured.NoCache)
	})

	t.Run("renders the snapshot", func(t *testing.T) {
		mock := &mockApp{
			listFunc: func(context.Context, app.ListOptions) (app.Snapshot, error) {
				return app.Snapshot{
					Available: []domain.Release{{Version: "0.4.0"}, {Version: "0.3.10"}},
					Installed: []domain.Version{{ID: "0.3.10"}},
					ActiveID:  "0.3.10",
				}, nil
			},
		}

		out, err := execute(t, mock, "list")
		require.NoError(t, err)
		assert.Contains(t, out, "0.3.10")
		assert.Contains(t, out, "0.4.0")
		assert.Contains(t, out, "Current version")
	})

	t.Run("propagates list failure", func(t *testing.T) {
		mock := &mockApp{
			listFunc: func(context.Context, app.ListOptions) (app.Snapshot, error) {
				return app.Snapshot{}, domain.ErrRateLimited
			},
		}

		_, err := execute(t, mock, "list")
		require.ErrorIs(t, err, domain.ErrRateLimited)
	})
}

func TestCommands_Install(t *testing.T) {
	t.Run("forwards all requested versions", func(t *testing.T) {
		var captured []string
		mock := &mockApp{
			installFunc: func(_ context.Context, versions []string) error {
				captured = versions
				return nil
			},
		}

		_, err := execute(t, mock, "install", "0.3.10", "0.4.0")
		require.NoError(t, err)
		assert.Equal(t, []string{"0.3.10", "0.4.0"}, captured)
	})

	t.Run("shows usage when no versions provided", func(t *testing.T) {
		mock := &mockApp{
			installFunc: func(context.Context, []string) error {
				panic("should not be called")
			},
		}

		out, err := execute(t, mock, "install")
		require.NoError(t, err)
		assert.Contains(t, out, "Usage:")
	})
}

func TestCommands_Use(t *testing.T) {
	var captured string
	mock := &mockApp{
		useFunc: func(version string) error {
			captured = version
			return nil
		},
	}

	_, err := execute(t, mock, "use", "0.3.10")
	require.NoError(t, err)
	assert.Equal(t, "0.3.10", captured)
}

func TestCommands_Remove(t *testing.T) {
	t.Run("removes a single version", func(t *testing.T) {
		var captured string
		allCalled := false
		mock := &mockApp{
			removeFunc:    func(version string) error { captured = version; return nil },
			removeAllFunc: func() error { allCalled = true; return nil },
		}

		_, err := execute(t, mock, "remove", "0.3.10")
		require.NoError(t, err)
		assert.Equal(t, "0.3.10", captured)
		assert.False(t, allCalled)
	})

	t.Run("ALL removes everything", func(t *testing.T) {
		allCalled := false
		mock := &mockApp{
			removeFunc:    func(string) error { panic("should not be called") },
			removeAllFunc: func() error { allCalled = true; return nil },
		}

		_, err := execute(t, mock, "remove", "ALL")
		require.NoError(t, err)
		assert.True(t, allCalled)
	})

	t.Run("propagates removal failure", func(t *testing.T) {
		mock := &mockApp{
			removeFunc: func(string) error { return errors.New("simulated error") },
		}

		_, err := execute(t, mock, "remove", "0.3.10")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "vvm version")
}
