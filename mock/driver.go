package mock

import (
	"context"

	"github.com/pacchoferes/dispatch"
)

var _ dispatch.DriverService = (*DriverService)(nil)

// DriverService is a mock implementation of dispatch.DriverService.
type DriverService struct {
	CreateDriverFn  func(ctx context.Context, driver *dispatch.Driver) error
	FindDriversFn   func(ctx context.Context, filter dispatch.DriverFilter) ([]*dispatch.Driver, error)
	DeleteDriverFn  func(ctx context.Context, name string) error
	DeleteDriversFn func(ctx context.Context) error
}

func (s *DriverService) CreateDriver(ctx context.Context, driver *dispatch.Driver) error {
	return s.CreateDriverFn(ctx, driver)
}

func (s *DriverService) FindDrivers(ctx context.Context, filter dispatch.DriverFilter) ([]*dispatch.Driver, error) {
	return s.FindDriversFn(ctx, filter)
}

func (s *DriverService) DeleteDriver(ctx context.Context, name string) error {
	return s.DeleteDriverFn(ctx, name)
}

func (s *DriverService) DeleteDrivers(ctx context.Context) error {
	return s.DeleteDriversFn(ctx)
}

var _ dispatch.ColorGenerator = (*ColorGenerator)(nil)

// ColorGenerator is a mock implementation of dispatch.ColorGenerator.
type ColorGenerator struct {
	ColorFn func() string
}

func (g *ColorGenerator) Color() string {
	return g.ColorFn()
}
