// Copyright (c) 2026 The go-openprovider Authors
// SPDX-License-Identifier: BSD-2-Clause

/*
Package envelope builds and parses OpenProvider XML request envelopes.

Every API call is a single XML document POSTed to the API endpoint. The
document wraps the caller's credentials and a request-specific payload
subtree:

	<openXML>
	  <credentials>
	    <username>user</username>
	    <hash>5f4dcc3b5aa765d61d8327deb882cf99</hash>
	  </credentials>
	  <checkDomainRequest>
	    <domains>
	      <array>
	        <item>
	          <name>example</name>
	          <extension>com</extension>
	        </item>
	      </array>
	    </domains>
	  </checkDomainRequest>
	</openXML>

The credentials element carries the username and exactly one of a
plaintext password or a password hash. Optional children are omitted
entirely when empty.

# Canonical Serialization

Envelopes are serialized with Exclusive XML Canonicalization, so the same
logical request always produces the same bytes. The API validates request
form strictly; canonical output also makes request logging and test
fixtures reproducible:

	creds := envelope.Credentials{Username: "user", Hash: "..."}
	data, err := envelope.BuildBytes(creds, payload)

# Building Payloads

Payload subtrees are built from small element helpers. Elem skips nil
children, and OptionalText returns nil for empty values, so optional
request fields disappear from the wire form:

	payload := envelope.Elem("retrieveDomainRequest",
	    envelope.Elem("domain",
	        envelope.Text("name", "example"),
	        envelope.Text("extension", "com"),
	        envelope.OptionalText("comment", ""),
	    ),
	)

# Parsing Responses

ParseResponse turns raw response bytes into a navigable document, and
Reply extracts the status envelope the API wraps every answer in:

	doc, err := envelope.ParseResponse(body)
	reply, err := envelope.Reply(doc)
	// reply.Code, reply.Desc, reply.Data

A reply code of zero denotes success; any other code is an API-level
error described by reply.Desc.
*/
package envelope
