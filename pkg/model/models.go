package model

import (
	"strings"

	"github.com/beevik/etree"
)

// Name is a person's name: initials, firstName, prefix (optional) and
// lastName.
type Name struct {
	Model
}

// NewName wraps a name element.
func NewName(elem *etree.Element) *Name {
	return &Name{Model: Model{elem: elem}}
}

// String renders "First Last", with the prefix in between when present
// (as in Dutch names: "Jan van der Berg").
func (n *Name) String() string {
	if n.Has("prefix") {
		return strings.Join([]string{n.text("firstName"), n.text("prefix"), n.text("lastName")}, " ")
	}
	return strings.Join([]string{n.text("firstName"), n.text("lastName")}, " ")
}

// Domain is a domain name split into name and extension.
type Domain struct {
	Model
}

// NewDomain wraps a domain element.
func NewDomain(elem *etree.Element) *Domain {
	return &Domain{Model: Model{elem: elem}}
}

// String renders the full domain, "name.extension".
func (d *Domain) String() string {
	return strings.Join([]string{d.text("name"), d.text("extension")}, ".")
}

// Nameserver is a nameserver with an IPv4 and/or IPv6 address.
type Nameserver struct {
	Model
}

// NewNameserver wraps a nameserver element.
func NewNameserver(elem *etree.Element) *Nameserver {
	return &Nameserver{Model: Model{elem: elem}}
}

// Record is a single DNS zone record: type, name, value, prio and ttl.
type Record struct {
	Model
}

// NewRecord wraps a record element.
func NewRecord(elem *etree.Element) *Record {
	return &Record{Model: Model{elem: elem}}
}

// History is one modification of a piece of data.
type History struct {
	Model
}

// NewHistory wraps a history element.
func NewHistory(elem *etree.Element) *History {
	return &History{Model: Model{elem: elem}}
}

// Address is a physical street address.
type Address struct {
	Model
}

// NewAddress wraps an address element.
func NewAddress(elem *etree.Element) *Address {
	return &Address{Model: Model{elem: elem}}
}

// Phone is an international phone number.
type Phone struct {
	Model
}

// NewPhone wraps a phone element.
func NewPhone(elem *etree.Element) *Phone {
	return &Phone{Model: Model{elem: elem}}
}

// String renders the number parts separated by spaces, for example
// "+31 10 4482297".
func (p *Phone) String() string {
	return strings.Join([]string{
		p.text("countryCode"),
		p.text("areaCode"),
		p.text("subscriberNumber"),
	}, " ")
}

// Reseller is the reseller profile attached to the account.
type Reseller struct {
	Model
}

// NewReseller wraps a reseller element.
func NewReseller(elem *etree.Element) *Reseller {
	return &Reseller{Model: Model{elem: elem}}
}

// Address returns the reseller's street address.
func (r *Reseller) Address() (*Address, error) {
	sub, err := r.Sub("address")
	if err != nil {
		return nil, err
	}
	return &Address{Model: *sub}, nil
}

// Phone returns the reseller's phone number.
func (r *Reseller) Phone() (*Phone, error) {
	sub, err := r.Sub("phone")
	if err != nil {
		return nil, err
	}
	return &Phone{Model: *sub}, nil
}

// Fax returns the reseller's fax number.
func (r *Reseller) Fax() (*Phone, error) {
	sub, err := r.Sub("fax")
	if err != nil {
		return nil, err
	}
	return &Phone{Model: *sub}, nil
}

// Customer is a customer handle: company or personal details used as
// domain owner, admin or tech contact.
type Customer struct {
	Model
}

// NewCustomer wraps a customer element.
func NewCustomer(elem *etree.Element) *Customer {
	return &Customer{Model: Model{elem: elem}}
}

// Address returns the customer's street address.
func (c *Customer) Address() (*Address, error) {
	sub, err := c.Sub("address")
	if err != nil {
		return nil, err
	}
	return &Address{Model: *sub}, nil
}

// Phone returns the customer's phone number.
func (c *Customer) Phone() (*Phone, error) {
	sub, err := c.Sub("phone")
	if err != nil {
		return nil, err
	}
	return &Phone{Model: *sub}, nil
}

// Fax returns the customer's fax number.
func (c *Customer) Fax() (*Phone, error) {
	sub, err := c.Sub("fax")
	if err != nil {
		return nil, err
	}
	return &Phone{Model: *sub}, nil
}

// Name returns the customer's personal name.
func (c *Customer) Name() (*Name, error) {
	sub, err := c.Sub("name")
	if err != nil {
		return nil, err
	}
	return &Name{Model: *sub}, nil
}

// SSLProduct is an SSL certificate product from the catalog.
type SSLProduct struct {
	Model
}

// NewSSLProduct wraps a product element.
func NewSSLProduct(elem *etree.Element) *SSLProduct {
	return &SSLProduct{Model: Model{elem: elem}}
}

// SSLOrder is an ordered SSL certificate.
type SSLOrder struct {
	Model
}

// NewSSLOrder wraps an order element.
func NewSSLOrder(elem *etree.Element) *SSLOrder {
	return &SSLOrder{Model: Model{elem: elem}}
}

// Extension is a domain extension (TLD) with its registration rules.
type Extension struct {
	Model
}

// NewExtension wraps an extension element.
func NewExtension(elem *etree.Element) *Extension {
	return &Extension{Model: Model{elem: elem}}
}
