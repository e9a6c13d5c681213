package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/pacchoferes/dispatch"
	main "github.com/pacchoferes/dispatch/cmd/dispatch"
	"github.com/pacchoferes/dispatch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverAddCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("creates driver with given color", func(t *testing.T) {
		t.Parallel()

		var created *dispatch.Driver
		drivers := &mock.DriverService{
			CreateDriverFn: func(_ context.Context, d *dispatch.Driver) error {
				created = d
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: stderr, Drivers: drivers}

		cmd := &main.DriverAddCmd{Name: "Juan", Color: "#ff0000"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "Juan", created.Name)
		assert.Equal(t, "#ff0000", created.Color)
		assert.Contains(t, stdout.String(), "Added driver \"Juan\"")
	})

	t.Run("falls back to default color", func(t *testing.T) {
		t.Parallel()

		var created *dispatch.Driver
		drivers := &mock.DriverService{
			CreateDriverFn: func(_ context.Context, d *dispatch.Driver) error {
				created = d
				return nil
			},
		}

		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, Drivers: drivers}

		require.NoError(t, (&main.DriverAddCmd{Name: "Juan"}).Run(deps))
		assert.Equal(t, dispatch.DefaultDriverColor, created.Color)
	})

	t.Run("reports duplicate driver", func(t *testing.T) {
		t.Parallel()

		drivers := &mock.DriverService{
			CreateDriverFn: func(_ context.Context, d *dispatch.Driver) error {
				return dispatch.Errorf(dispatch.ECONFLICT, "driver %q already exists", d.Name)
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: stderr, Drivers: drivers}

		err := (&main.DriverAddCmd{Name: "Juan"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, dispatch.ECONFLICT, dispatch.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: driver \"Juan\" already exists")
		assert.Empty(t, stdout.String())
	})
}

func TestDriverListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists drivers with colors", func(t *testing.T) {
		t.Parallel()

		drivers := &mock.DriverService{
			FindDriversFn: func(_ context.Context, _ dispatch.DriverFilter) ([]*dispatch.Driver, error) {
				return []*dispatch.Driver{
					{Name: "Juan", Color: "#ff0000"},
					{Name: "Maria", Color: "#00ff00"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Drivers: drivers}

		require.NoError(t, (&main.DriverListCmd{}).Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "#ff0000  Juan")
		assert.Contains(t, output, "#00ff00  Maria")
	})

	t.Run("filters by exact name", func(t *testing.T) {
		t.Parallel()

		var filter dispatch.DriverFilter
		drivers := &mock.DriverService{
			FindDriversFn: func(_ context.Context, f dispatch.DriverFilter) ([]*dispatch.Driver, error) {
				filter = f
				return []*dispatch.Driver{{Name: "Maria", Color: "#00ff00"}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Drivers: drivers}

		require.NoError(t, (&main.DriverListCmd{Name: "Maria"}).Run(deps))
		require.NotNil(t, filter.Name)
		assert.Equal(t, "Maria", *filter.Name)
		assert.Contains(t, stdout.String(), "#00ff00  Maria")
	})

	t.Run("shows helpful message when no drivers exist", func(t *testing.T) {
		t.Parallel()

		drivers := &mock.DriverService{
			FindDriversFn: func(_ context.Context, _ dispatch.DriverFilter) ([]*dispatch.Driver, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Drivers: drivers}

		require.NoError(t, (&main.DriverListCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "No drivers")
	})

	t.Run("returns error when FindDrivers fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")
		drivers := &mock.DriverService{
			FindDriversFn: func(_ context.Context, _ dispatch.DriverFilter) ([]*dispatch.Driver, error) {
				return nil, dbErr
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Drivers: drivers}

		err := (&main.DriverListCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestDriverDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires --force", func(t *testing.T) {
		t.Parallel()

		deleteCalled := false
		drivers := &mock.DriverService{
			DeleteDriverFn: func(_ context.Context, _ string) error {
				deleteCalled = true
				return nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Drivers: drivers}

		err := (&main.DriverDeleteCmd{Name: "Juan"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, dispatch.EINVALID, dispatch.ErrorCode(err))
		assert.False(t, deleteCalled)
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("deletes driver by name", func(t *testing.T) {
		t.Parallel()

		var deleted string
		drivers := &mock.DriverService{
			DeleteDriverFn: func(_ context.Context, name string) error {
				deleted = name
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Drivers: drivers}

		require.NoError(t, (&main.DriverDeleteCmd{Name: "Juan", Force: true}).Run(deps))
		assert.Equal(t, "Juan", deleted)
		assert.Contains(t, stdout.String(), "Deleted driver \"Juan\"")
	})
}

func TestDriverClearCmd_Run(t *testing.T) {
	t.Parallel()

	cleared := false
	drivers := &mock.DriverService{
		DeleteDriversFn: func(_ context.Context) error {
			cleared = true
			return nil
		},
	}

	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Drivers: drivers}

	require.Error(t, (&main.DriverClearCmd{}).Run(deps))
	assert.False(t, cleared)

	require.NoError(t, (&main.DriverClearCmd{Force: true}).Run(deps))
	assert.True(t, cleared)
	assert.Contains(t, stdout.String(), "Deleted all drivers")
}
