package openprovider

import (
	"context"

	"github.com/lagowski/go-openprovider/pkg/envelope"
	"github.com/lagowski/go-openprovider/pkg/model"
)

// ExtensionsService exposes the catalog of supported domain extensions.
type ExtensionsService struct {
	client *Client
}

// Search lists all extensions the account can register under.
func (s *ExtensionsService) Search(ctx context.Context) ([]*model.Extension, error) {
	resp, err := s.client.Send(ctx, envelope.Elem("searchExtensionRequest"))
	if err != nil {
		return nil, err
	}

	var extensions []*model.Extension
	for _, item := range searchItems(resp.Data()) {
		if sub, err := item.Sub("extension"); err == nil {
			extensions = append(extensions, model.NewExtension(sub.Elem()))
		}
	}
	return extensions, nil
}

// Retrieve fetches a single extension's registration rules, e.g. "nl".
func (s *ExtensionsService) Retrieve(ctx context.Context, name string) (*model.Extension, error) {
	payload := envelope.Elem("retrieveExtensionRequest",
		envelope.Text("name", name),
	)

	resp, err := s.client.Send(ctx, payload)
	if err != nil {
		return nil, err
	}

	sub, err := resp.Data().Sub("extension")
	if err != nil {
		return nil, err
	}
	return model.NewExtension(sub.Elem()), nil
}
