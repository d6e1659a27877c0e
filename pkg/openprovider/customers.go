package openprovider

import (
	"context"

	"github.com/lagowski/go-openprovider/pkg/envelope"
	"github.com/lagowski/go-openprovider/pkg/model"
)

// CustomersService manages customer handles: the owner, admin and tech
// contacts attached to domains.
type CustomersService struct {
	client *Client
}

// CustomerSearchFilter narrows a customer search. Zero-valued fields are
// omitted from the request.
type CustomerSearchFilter struct {
	CompanyNamePattern string
	LastNamePattern    string
	EmailPattern       string
	Limit              int
	Offset             int
}

// Retrieve fetches a customer by handle, e.g. "AB123456-NL".
func (s *CustomersService) Retrieve(ctx context.Context, handle string) (*model.Customer, error) {
	payload := envelope.Elem("retrieveCustomerRequest",
		envelope.Text("handle", handle),
	)

	resp, err := s.client.Send(ctx, payload)
	if err != nil {
		return nil, err
	}

	sub, err := resp.Data().Sub("customer")
	if err != nil {
		return nil, err
	}
	return model.NewCustomer(sub.Elem()), nil
}

// Search lists customers matching the filter.
func (s *CustomersService) Search(ctx context.Context, filter CustomerSearchFilter) ([]*model.Customer, error) {
	payload := envelope.Elem("searchCustomerRequest",
		envelope.OptionalText("companyNamePattern", filter.CompanyNamePattern),
		envelope.OptionalText("lastNamePattern", filter.LastNamePattern),
		envelope.OptionalText("emailPattern", filter.EmailPattern),
		optionalInt("limit", filter.Limit),
		optionalInt("offset", filter.Offset),
	)

	resp, err := s.client.Send(ctx, payload)
	if err != nil {
		return nil, err
	}

	var customers []*model.Customer
	for _, item := range searchItems(resp.Data()) {
		if sub, err := item.Sub("customer"); err == nil {
			customers = append(customers, model.NewCustomer(sub.Elem()))
		}
	}
	return customers, nil
}

// Delete removes a customer handle.
func (s *CustomersService) Delete(ctx context.Context, handle string) error {
	payload := envelope.Elem("deleteCustomerRequest",
		envelope.Text("handle", handle),
	)

	_, err := s.client.Send(ctx, payload)
	return err
}
