package mock

import (
	"context"

	"github.com/pacchoferes/dispatch"
)

var _ dispatch.AddressService = (*AddressService)(nil)

// AddressService is a mock implementation of dispatch.AddressService.
type AddressService struct {
	CreateAddressFn   func(ctx context.Context, address *dispatch.Address) error
	FindAddressesFn   func(ctx context.Context, filter dispatch.AddressFilter) ([]*dispatch.Address, error)
	DeleteAddressesFn func(ctx context.Context) error
}

func (s *AddressService) CreateAddress(ctx context.Context, address *dispatch.Address) error {
	return s.CreateAddressFn(ctx, address)
}

func (s *AddressService) FindAddresses(ctx context.Context, filter dispatch.AddressFilter) ([]*dispatch.Address, error) {
	return s.FindAddressesFn(ctx, filter)
}

func (s *AddressService) DeleteAddresses(ctx context.Context) error {
	return s.DeleteAddressesFn(ctx)
}
