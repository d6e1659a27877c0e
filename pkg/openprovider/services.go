package openprovider

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/lagowski/go-openprovider/pkg/apierror"
	"github.com/lagowski/go-openprovider/pkg/envelope"
	"github.com/lagowski/go-openprovider/pkg/model"
)

// splitDomain splits a full domain into name and extension at the first
// dot, so "example.co.uk" becomes "example" and "co.uk".
func splitDomain(domain string) (name, extension string, err error) {
	name, extension, found := strings.Cut(domain, ".")
	if !found || name == "" || extension == "" {
		return "", "", fmt.Errorf("%w: %q", apierror.ErrInvalidDomainName, domain)
	}
	return name, extension, nil
}

// optionalInt renders a positive integer field, omitting it when zero.
func optionalInt(tag string, value int) *etree.Element {
	if value == 0 {
		return nil
	}
	return envelope.Text(tag, strconv.Itoa(value))
}

// domainElem builds the name/extension pair used across domain requests.
func domainElem(tag, domain string) (*etree.Element, error) {
	name, extension, err := splitDomain(domain)
	if err != nil {
		return nil, err
	}
	return envelope.Elem(tag,
		envelope.Text("name", name),
		envelope.Text("extension", extension),
	), nil
}

// searchItems returns the item models under data/results/array. Search
// replies with an empty result set lack the array entirely; that is a
// nil slice, not an error.
func searchItems(data *model.Model) []*model.Model {
	results, err := data.Sub("results")
	if err != nil {
		return nil
	}
	arr, err := results.Sub("array")
	if err != nil {
		return nil
	}
	var items []*model.Model
	for _, child := range arr.Elem().ChildElements() {
		items = append(items, model.New(child))
	}
	return items
}
