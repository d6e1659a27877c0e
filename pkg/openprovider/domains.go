package openprovider

import (
	"context"
	"fmt"

	"github.com/beevik/etree"

	"github.com/lagowski/go-openprovider/pkg/apierror"
	"github.com/lagowski/go-openprovider/pkg/envelope"
	"github.com/lagowski/go-openprovider/pkg/model"
)

// DomainsService manages domain registrations.
type DomainsService struct {
	client *Client
}

// DomainSearchFilter narrows a domain search. Zero-valued fields are
// omitted from the request.
type DomainSearchFilter struct {
	// NamePattern is an SQL-style pattern on the domain name, e.g. "exam%".
	NamePattern string
	Extension   string
	Status      string
	Limit       int
	Offset      int
}

// Check reports a single domain's availability status, typically "free"
// or "active".
func (s *DomainsService) Check(ctx context.Context, domain string) (string, error) {
	statuses, err := s.CheckMany(ctx, []string{domain})
	if err != nil {
		return "", err
	}
	if status, ok := statuses[domain]; ok {
		return status, nil
	}
	// Single-item request: accept the lone answer even if the server
	// echoed the name in a different form.
	if len(statuses) == 1 {
		for _, status := range statuses {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: check reply carries no status for %q", apierror.ErrMalformedResponse, domain)
}

// CheckMany checks several domains in one call and returns their
// statuses keyed by full domain name.
func (s *DomainsService) CheckMany(ctx context.Context, domains []string) (map[string]string, error) {
	items := make([]*etree.Element, 0, len(domains))
	for _, domain := range domains {
		name, extension, err := splitDomain(domain)
		if err != nil {
			return nil, err
		}
		items = append(items, envelope.Item(
			envelope.Text("name", name),
			envelope.Text("extension", extension),
		))
	}

	payload := envelope.Elem("checkDomainRequest",
		envelope.Elem("domains", envelope.Array(items...)),
	)

	resp, err := s.client.Send(ctx, payload)
	if err != nil {
		return nil, err
	}

	statuses := make(map[string]string, len(domains))
	err = resp.Data().Each("array", func(item *model.Model) {
		domain, derr := item.Get("domain")
		status, serr := item.Get("status")
		if derr == nil && serr == nil {
			statuses[domain] = status
		}
	})
	if err != nil {
		return nil, err
	}
	return statuses, nil
}

// Retrieve fetches a registered domain.
func (s *DomainsService) Retrieve(ctx context.Context, domain string) (*model.Domain, error) {
	elem, err := domainElem("domain", domain)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Send(ctx, envelope.Elem("retrieveDomainRequest", elem))
	if err != nil {
		return nil, err
	}

	sub, err := resp.Data().Sub("domain")
	if err != nil {
		return nil, err
	}
	return model.NewDomain(sub.Elem()), nil
}

// Search lists registered domains matching the filter.
func (s *DomainsService) Search(ctx context.Context, filter DomainSearchFilter) ([]*model.Domain, error) {
	payload := envelope.Elem("searchDomainRequest",
		envelope.OptionalText("domainNamePattern", filter.NamePattern),
		envelope.OptionalText("extension", filter.Extension),
		envelope.OptionalText("status", filter.Status),
		optionalInt("limit", filter.Limit),
		optionalInt("offset", filter.Offset),
	)

	resp, err := s.client.Send(ctx, payload)
	if err != nil {
		return nil, err
	}

	var domains []*model.Domain
	for _, item := range searchItems(resp.Data()) {
		if sub, err := item.Sub("domain"); err == nil {
			domains = append(domains, model.NewDomain(sub.Elem()))
		}
	}
	return domains, nil
}

// Delete removes a domain registration.
func (s *DomainsService) Delete(ctx context.Context, domain string) error {
	elem, err := domainElem("domain", domain)
	if err != nil {
		return err
	}

	_, err = s.client.Send(ctx, envelope.Elem("deleteDomainRequest", elem))
	return err
}
