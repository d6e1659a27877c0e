// Copyright (c) 2026 The go-openprovider Authors
// SPDX-License-Identifier: BSD-2-Clause

/*
Package goopenprovider implements a client for the OpenProvider registrar
API: domain registration, customer handles, SSL certificates, nameservers
and DNS zones.

# Overview

go-openprovider speaks the OpenProvider XML API: every call is a single
HTTP POST carrying a canonical XML envelope with embedded credentials,
answered by a reply element carrying a numeric result code. The library
wraps that exchange behind typed services and maps reply codes onto a Go
error taxonomy, so callers work with errors.Is and errors.As instead of
code tables.

# Package Structure

The library is organized into the following packages:

	github.com/lagowski/go-openprovider/pkg/openprovider - Client, services and env factory
	github.com/lagowski/go-openprovider/pkg/envelope     - Request envelopes and canonical XML
	github.com/lagowski/go-openprovider/pkg/model        - XML-backed response models
	github.com/lagowski/go-openprovider/pkg/apierror     - Error taxonomy and code mapping
	github.com/lagowski/go-openprovider/pkg/transport    - HTTP POST transport

# Quick Start

To check a domain's availability:

	import (
	    "github.com/lagowski/go-openprovider/pkg/apierror"
	    "github.com/lagowski/go-openprovider/pkg/openprovider"
	)

	client, err := openprovider.New("myreseller",
	    openprovider.WithPasswordHash("5f4dcc3b5aa765d61d8327deb882cf99"),
	)
	if err != nil {
	    return err
	}

	status, err := client.Domains.Check(ctx, "example.com")
	if errors.Is(err, apierror.ErrServiceUnavailable) {
	    // the exchange itself failed; retry later
	}

Credentials can also come from the environment:

	client, err := openprovider.FromEnv("")

which reads OPENPROVIDER_USERNAME together with OPENPROVIDER_PASSWORD or
OPENPROVIDER_PASSWORD_HASH, and respects OPENPROVIDER_URL for pointing at
the cte test environment.

# Services

The client exposes one service per API resource:

  - Domains: check availability, retrieve, search and delete registrations
  - Customers: manage the contact handles attached to domains
  - SSL: browse the certificate product catalog and the account's orders
  - Nameservers: glue records and DNS zone contents
  - Extensions: the TLDs the account can register under
  - Resellers: the account's own profile

# Error Handling

Failures fall into three families: configuration errors raised before any
request is made, transport failures that wrap apierror.ErrServiceUnavailable,
and API-level errors that carry the reply code. See the apierror package
for the full taxonomy.

# License

BSD-2-Clause License
*/
package goopenprovider
