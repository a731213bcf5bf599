package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/JimBobSquarePants/Cruncher-sub001/cmd/cruncher/commands"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/build"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockApp struct {
	bundleFunc func(ctx context.Context, identifiers []string, kind domain.TargetKind, minify bool) (string, error)
	watchFunc  func(ctx context.Context) error
	cleanFunc  func(ctx context.Context) error
}

func (m *mockApp) Bundle(ctx context.Context, identifiers []string, kind domain.TargetKind, minify bool) (string, error) {
	if m.bundleFunc != nil {
		return m.bundleFunc(ctx, identifiers, kind, minify)
	}
	return "", nil
}

func (m *mockApp) Watch(ctx context.Context) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx)
	}
	return nil
}

func TestCommands_Bundle(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedIdentifiers []string
		var capturedKind domain.TargetKind
		var capturedMinify bool

		mock := &mockApp{
			bundleFunc: func(_ context.Context, identifiers []string, kind domain.TargetKind, minify bool) (string, error) {
				capturedIdentifiers = identifiers
				capturedKind = kind
				capturedMinify = minify
				return "body{}", nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"bundle", "reset.css", "site.css", "--kind", "css", "--minify"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"reset.css", "site.css"}, capturedIdentifiers)
		assert.Equal(t, domain.KindStyle, capturedKind)
		assert.True(t, capturedMinify)
		assert.Contains(t, buf.String(), "body{}")
	})

	t.Run("infers kind from first identifier", func(t *testing.T) {
		var capturedKind domain.TargetKind
		mock := &mockApp{
			bundleFunc: func(_ context.Context, _ []string, kind domain.TargetKind, _ bool) (string, error) {
				capturedKind = kind
				return "", nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"bundle", "app.js", "vendor.js"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, domain.KindScript, capturedKind)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"bundle", "site.css", "--kind", "font"})

		err := cli.Execute(context.Background())
		assert.ErrorIs(t, err, domain.ErrUnknownTargetKind)
	})

	t.Run("returns error on bundle failure", func(t *testing.T) {
		mock := &mockApp{
			bundleFunc: func(_ context.Context, _ []string, _ domain.TargetKind, _ bool) (string, error) {
				return "", errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"bundle", "site.css"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no identifiers provided", func(t *testing.T) {
		mock := &mockApp{
			bundleFunc: func(_ context.Context, _ []string, _ domain.TargetKind, _ bool) (string, error) {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"bundle"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_Clean(t *testing.T) {
	called := false
	mock := &mockApp{
		cleanFunc: func(_ context.Context) error {
			called = true
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"clean"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, called)
}

func TestCommands_Watch(t *testing.T) {
	called := false
	mock := &mockApp{
		watchFunc: func(_ context.Context) error {
			called = true
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"watch"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, called)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
