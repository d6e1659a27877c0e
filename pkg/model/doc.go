// Copyright (c) 2026 The go-openprovider Authors
// SPDX-License-Identifier: BSD-2-Clause

/*
Package model provides attribute-style access over parsed API responses.

API responses are XML trees whose element vocabulary evolves server-side.
Rather than a rigid struct per response shape, a Model wraps a subtree and
resolves field names dynamically:

	m := model.New(elem)
	name, err := m.Get("companyName")

# Name Bridging

The API uses camelCase element names. Lookups accept idiomatic
underscore-separated names too; company_name and companyName resolve to
the same element. Override values supplied at construction take
precedence over the subtree and are matched by their exact key only.

# Typed Wrappers

A small catalog of named wrappers adds composition and human-readable
renderings over the generic Model:

	customer := model.NewCustomer(elem)
	addr, err := customer.Address()   // nested wrapper over <address>
	phone, err := customer.Phone()    // "+31 10 4482297"

Failed lookups return an error wrapping ErrAttributeNotFound that lists
the known override keys and child element tags, which keeps debugging
against a moving API surface tractable.
*/
package model
