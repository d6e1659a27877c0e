package openprovider

import (
	"context"

	"github.com/lagowski/go-openprovider/pkg/envelope"
	"github.com/lagowski/go-openprovider/pkg/model"
)

// NameserversService manages glue nameservers and DNS zone records.
type NameserversService struct {
	client *Client
}

// Create registers a nameserver. At least one of ip (IPv4) and ip6
// (IPv6) must be given; the API rejects a nameserver without an address.
func (s *NameserversService) Create(ctx context.Context, name, ip, ip6 string) error {
	payload := envelope.Elem("createNsRequest",
		envelope.Text("name", name),
		envelope.OptionalText("ip", ip),
		envelope.OptionalText("ip6", ip6),
	)

	_, err := s.client.Send(ctx, payload)
	return err
}

// Retrieve fetches a nameserver by hostname.
func (s *NameserversService) Retrieve(ctx context.Context, name string) (*model.Nameserver, error) {
	payload := envelope.Elem("retrieveNsRequest",
		envelope.Text("name", name),
	)

	resp, err := s.client.Send(ctx, payload)
	if err != nil {
		return nil, err
	}

	sub, err := resp.Data().Sub("nameserver")
	if err != nil {
		return nil, err
	}
	return model.NewNameserver(sub.Elem()), nil
}

// Delete removes a nameserver.
func (s *NameserversService) Delete(ctx context.Context, name string) error {
	payload := envelope.Elem("deleteNsRequest",
		envelope.Text("name", name),
	)

	_, err := s.client.Send(ctx, payload)
	return err
}

// SearchZoneRecords lists the DNS records of a domain's zone.
func (s *NameserversService) SearchZoneRecords(ctx context.Context, domain string) ([]*model.Record, error) {
	elem, err := domainElem("domain", domain)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Send(ctx, envelope.Elem("searchZoneRecordRequest", elem))
	if err != nil {
		return nil, err
	}

	var records []*model.Record
	for _, item := range searchItems(resp.Data()) {
		if sub, err := item.Sub("record"); err == nil {
			records = append(records, model.NewRecord(sub.Elem()))
		}
	}
	return records, nil
}
