// Copyright (c) 2026 The go-openprovider Authors
// SPDX-License-Identifier: BSD-2-Clause

/*
Package apierror defines the error taxonomy for OpenProvider API calls.

Every failure surfaces as one of three families:

  - Configuration errors (ErrConfiguration): invalid credentials or
    missing environment values, raised at construction time.
  - Transport errors (ErrServiceUnavailable): the HTTP exchange itself
    failed, including non-success status codes. Callers never need to
    distinguish transport failure subtypes.
  - API-level errors (*Error): the API answered with a non-zero reply
    code. The numeric code is mapped to a sentinel kind so callers can
    match on error classes without memorizing code tables. Every kind
    wraps ErrAPI, so errors.Is(err, ErrAPI) matches any API answer.

# Matching Errors

All errors work with the errors package:

	_, err := client.Domains.Check(ctx, "example.com")
	if errors.Is(err, apierror.ErrDomainTaken) {
	    // 346: somebody got there first
	}

	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
	    log.Printf("code=%d desc=%s", apiErr.Code, apiErr.Desc)
	}

# Code Mapping

FromCode is total: recognized codes map to their sentinel kind, and every
other integer falls back to ErrAPI. The table is fixed at process start
and never mutated.
*/
package apierror
