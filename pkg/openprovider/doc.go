// Copyright (c) 2026 The go-openprovider Authors
// SPDX-License-Identifier: BSD-2-Clause

/*
Package openprovider provides the client for the OpenProvider API.

OpenProvider is a domain, SSL and DNS registrar with an XML-over-HTTP
API: every call POSTs a credentialed XML envelope and receives an XML
reply carrying a numeric status code. This package orchestrates the
exchange and exposes the per-resource operations as services on the
Client.

# Creating a Client

A client authenticates with a username and exactly one of a plaintext
password or the MD5 hash of it:

	client, err := openprovider.New("user",
	    openprovider.WithPasswordHash("5f4dcc3b5aa765d61d8327deb882cf99"),
	)

Supplying both or neither secret is a construction-time error. The
client holds no mutable state beyond its configuration and is safe to
reuse across sequential calls.

Credentials can also come from the environment, following the
OPENPROVIDER_USERNAME / OPENPROVIDER_PASSWORD_HASH / OPENPROVIDER_PASSWORD
/ OPENPROVIDER_URL convention, with an optional account infix for
multi-account setups (OPENPROVIDER_ACME_USERNAME):

	client, err := openprovider.FromEnv("")

# Services

Per-resource operations hang off the client:

	status, err := client.Domains.Check(ctx, "example.com")
	customer, err := client.Customers.Retrieve(ctx, "AB123456-NL")
	products, err := client.SSL.SearchProducts(ctx)

Each operation builds a request payload, sends it through Send, and
wraps the reply in the matching model type.

# Error Handling

A non-zero reply code surfaces as an *apierror.Error that unwraps to a
sentinel kind; transport failures of any sort unwrap to
apierror.ErrServiceUnavailable:

	_, err := client.Domains.Check(ctx, "example.com")
	switch {
	case errors.Is(err, apierror.ErrDomainTaken):
	    // not available
	case errors.Is(err, apierror.ErrServiceUnavailable):
	    // network trouble; caller owns retry policy
	}

# Observation Hooks

Two optional hooks observe the exchange without modifying it, useful for
request logging and test capture:

	openprovider.WithPreRequestHook(func(payload *etree.Element, envelope []byte) {
	    log.Printf("-> %s", payload.Tag)
	})
	openprovider.WithPostRequestHook(func(resp *http.Response, tree *etree.Document) {
	    log.Printf("<- %s", resp.Status)
	})
*/
package openprovider
