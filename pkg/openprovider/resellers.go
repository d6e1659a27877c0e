package openprovider

import (
	"context"

	"github.com/lagowski/go-openprovider/pkg/envelope"
	"github.com/lagowski/go-openprovider/pkg/model"
)

// ResellersService exposes the reseller profile of the authenticated
// account.
type ResellersService struct {
	client *Client
}

// Retrieve fetches the account's reseller profile, including its
// balance and contact details.
func (s *ResellersService) Retrieve(ctx context.Context) (*model.Reseller, error) {
	resp, err := s.client.Send(ctx, envelope.Elem("retrieveResellerRequest"))
	if err != nil {
		return nil, err
	}

	sub, err := resp.Data().Sub("reseller")
	if err != nil {
		return nil, err
	}
	return model.NewReseller(sub.Elem()), nil
}
