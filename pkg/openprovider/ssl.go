package openprovider

import (
	"context"

	"github.com/lagowski/go-openprovider/pkg/envelope"
	"github.com/lagowski/go-openprovider/pkg/model"
)

// SSLService covers the SSL certificate product catalog and orders.
type SSLService struct {
	client *Client
}

// SearchProducts lists the available certificate products.
func (s *SSLService) SearchProducts(ctx context.Context) ([]*model.SSLProduct, error) {
	resp, err := s.client.Send(ctx, envelope.Elem("searchProductSslCertRequest"))
	if err != nil {
		return nil, err
	}

	var products []*model.SSLProduct
	for _, item := range searchItems(resp.Data()) {
		if sub, err := item.Sub("product"); err == nil {
			products = append(products, model.NewSSLProduct(sub.Elem()))
		}
	}
	return products, nil
}

// RetrieveProduct fetches a certificate product by its numeric id.
func (s *SSLService) RetrieveProduct(ctx context.Context, id int) (*model.SSLProduct, error) {
	payload := envelope.Elem("retrieveProductSslCertRequest",
		optionalInt("id", id),
	)

	resp, err := s.client.Send(ctx, payload)
	if err != nil {
		return nil, err
	}

	sub, err := resp.Data().Sub("product")
	if err != nil {
		return nil, err
	}
	return model.NewSSLProduct(sub.Elem()), nil
}

// SearchOrders lists the account's certificate orders.
func (s *SSLService) SearchOrders(ctx context.Context) ([]*model.SSLOrder, error) {
	resp, err := s.client.Send(ctx, envelope.Elem("searchOrderSslCertRequest"))
	if err != nil {
		return nil, err
	}

	var orders []*model.SSLOrder
	for _, item := range searchItems(resp.Data()) {
		if sub, err := item.Sub("order"); err == nil {
			orders = append(orders, model.NewSSLOrder(sub.Elem()))
		}
	}
	return orders, nil
}

// RetrieveOrder fetches a certificate order by its numeric id.
func (s *SSLService) RetrieveOrder(ctx context.Context, id int) (*model.SSLOrder, error) {
	payload := envelope.Elem("retrieveOrderSslCertRequest",
		optionalInt("id", id),
	)

	resp, err := s.client.Send(ctx, payload)
	if err != nil {
		return nil, err
	}

	sub, err := resp.Data().Sub("order")
	if err != nil {
		return nil, err
	}
	return model.NewSSLOrder(sub.Elem()), nil
}
