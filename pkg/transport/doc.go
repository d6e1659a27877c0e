// Copyright (c) 2026 The go-openprovider Authors
// SPDX-License-Identifier: BSD-2-Clause

/*
Package transport implements the HTTP layer for OpenProvider API calls.

Every API call is one HTTP POST of an XML envelope to a single endpoint.
The transport owns the http.Client, TLS settings and timeout, and folds
every failure mode into one condition: an error wrapping
apierror.ErrServiceUnavailable. Connection refused, DNS failure, timeout
and non-success HTTP status are indistinguishable to callers, which
matches how the API is operated; none of them are retried here.

# Usage

	tr := transport.New(&transport.Config{
	    URL: "https://api.openprovider.eu",
	})
	resp, body, err := tr.Post(ctx, envelopeBytes)

TLS certificate verification is enabled by default. The Config allows
injecting a custom http.Client, which tests use to point the transport
at an httptest server.
*/
package transport
