// Package slog provides logging decorators for dispatch services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pacchoferes/dispatch"
)

// Ensure LoggingDriverService implements dispatch.DriverService.
var _ dispatch.DriverService = (*LoggingDriverService)(nil)

// LoggingDriverService wraps a DriverService with debug logging.
type LoggingDriverService struct {
	next   dispatch.DriverService
	logger *slog.Logger
}

// NewLoggingDriverService creates a new LoggingDriverService.
func NewLoggingDriverService(next dispatch.DriverService, logger *slog.Logger) *LoggingDriverService {
	return &LoggingDriverService{next: next, logger: logger}
}

// CreateDriver delegates to the wrapped service and logs the operation.
func (s *LoggingDriverService) CreateDriver(ctx context.Context, driver *dispatch.Driver) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create driver",
			"name", driver.Name,
			"color", driver.Color,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateDriver(ctx, driver)
}

// FindDrivers delegates to the wrapped service and logs the operation.
func (s *LoggingDriverService) FindDrivers(ctx context.Context, filter dispatch.DriverFilter) (drivers []*dispatch.Driver, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find drivers",
			"count", len(drivers),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDrivers(ctx, filter)
}

// DeleteDriver delegates to the wrapped service and logs the operation.
func (s *LoggingDriverService) DeleteDriver(ctx context.Context, name string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete driver",
			"name", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteDriver(ctx, name)
}

// DeleteDrivers delegates to the wrapped service and logs the operation.
func (s *LoggingDriverService) DeleteDrivers(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("clear drivers",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteDrivers(ctx)
}

// Ensure LoggingAddressService implements dispatch.AddressService.
var _ dispatch.AddressService = (*LoggingAddressService)(nil)

// LoggingAddressService wraps an AddressService with debug logging.
type LoggingAddressService struct {
	next   dispatch.AddressService
	logger *slog.Logger
}

// NewLoggingAddressService creates a new LoggingAddressService.
func NewLoggingAddressService(next dispatch.AddressService, logger *slog.Logger) *LoggingAddressService {
	return &LoggingAddressService{next: next, logger: logger}
}

// CreateAddress delegates to the wrapped service and logs the operation.
func (s *LoggingAddressService) CreateAddress(ctx context.Context, address *dispatch.Address) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create address",
			"id", address.ID,
			"driver", address.Driver,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateAddress(ctx, address)
}

// FindAddresses delegates to the wrapped service and logs the operation.
func (s *LoggingAddressService) FindAddresses(ctx context.Context, filter dispatch.AddressFilter) (addresses []*dispatch.Address, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"count", len(addresses),
			"duration", time.Since(begin),
			"err", err,
		}
		if filter.Fragment != nil {
			attrs = append(attrs, "fragment", *filter.Fragment)
		}
		s.logger.Info("find addresses", attrs...)
	}(time.Now())
	return s.next.FindAddresses(ctx, filter)
}

// DeleteAddresses delegates to the wrapped service and logs the operation.
func (s *LoggingAddressService) DeleteAddresses(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("clear addresses",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteAddresses(ctx)
}
