package envelope

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagowski/go-openprovider/pkg/apierror"
)

func TestCredentials_Validate(t *testing.T) {
	t.Run("password only", func(t *testing.T) {
		creds := Credentials{Username: "user", Password: "s3cret"}
		assert.NoError(t, creds.Validate())
	})

	t.Run("hash only", func(t *testing.T) {
		creds := Credentials{Username: "user", Hash: "5f4dcc3b5aa765d61d8327deb882cf99"}
		assert.NoError(t, creds.Validate())
	})

	t.Run("both secrets", func(t *testing.T) {
		creds := Credentials{Username: "user", Password: "s3cret", Hash: "abc"}
		err := creds.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, apierror.ErrConfiguration)
	})

	t.Run("neither secret", func(t *testing.T) {
		creds := Credentials{Username: "user"}
		err := creds.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, apierror.ErrConfiguration)
	})

	t.Run("empty username", func(t *testing.T) {
		creds := Credentials{Password: "s3cret"}
		err := creds.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, apierror.ErrConfiguration)
	})
}

func TestBuild_EnvelopeShape(t *testing.T) {
	creds := Credentials{Username: "user", Password: "s3cret"}
	payload := Elem("checkDomainRequest",
		Elem("domains", Array(Item(
			Text("name", "example"),
			Text("extension", "com"),
		))),
	)

	doc, err := Build(creds, payload)
	require.NoError(t, err)

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "openXML", root.Tag)

	// Credentials come first, payload second.
	children := root.ChildElements()
	require.Len(t, children, 2)
	assert.Equal(t, "credentials", children[0].Tag)
	assert.Equal(t, "checkDomainRequest", children[1].Tag)

	credsElem := children[0]
	assert.Equal(t, "user", credsElem.SelectElement("username").Text())
	assert.Equal(t, "s3cret", credsElem.SelectElement("password").Text())
	assert.Nil(t, credsElem.SelectElement("hash"), "hash element must be omitted")
}

func TestBuild_HashCredential(t *testing.T) {
	creds := Credentials{Username: "user", Hash: "5f4dcc3b5aa765d61d8327deb882cf99"}

	doc, err := Build(creds, Elem("retrieveResellerRequest"))
	require.NoError(t, err)

	credsElem := doc.Root().SelectElement("credentials")
	require.NotNil(t, credsElem)
	assert.Nil(t, credsElem.SelectElement("password"), "password element must be omitted")
	assert.Equal(t, "5f4dcc3b5aa765d61d8327deb882cf99", credsElem.SelectElement("hash").Text())
}

func TestBuild_InvalidInputs(t *testing.T) {
	t.Run("bad credentials", func(t *testing.T) {
		_, err := Build(Credentials{Username: "user"}, Elem("req"))
		assert.ErrorIs(t, err, apierror.ErrConfiguration)
	})

	t.Run("nil payload", func(t *testing.T) {
		_, err := Build(Credentials{Username: "user", Password: "pw"}, nil)
		assert.Error(t, err)
	})
}

func TestSerialize_CanonicalForm(t *testing.T) {
	creds := Credentials{Username: "user", Password: "pass"}

	data, err := BuildBytes(creds, Elem("retrieveResellerRequest"))
	require.NoError(t, err)

	want := "<openXML>" +
		"<credentials>" +
		"<username>user</username>" +
		"<password>pass</password>" +
		"</credentials>" +
		"<retrieveResellerRequest></retrieveResellerRequest>" +
		"</openXML>"
	assert.Equal(t, want, string(data))
}

func TestSerialize_Deterministic(t *testing.T) {
	creds := Credentials{Username: "user", Hash: "cafebabe"}
	payload := func() *etree.Element {
		return Elem("searchDomainRequest",
			Text("domainNamePattern", "exam%"),
			Text("extension", "com"),
		)
	}

	first, err := BuildBytes(creds, payload())
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		next, err := BuildBytes(creds, payload())
		require.NoError(t, err)
		assert.Equal(t, first, next, "serialization must be byte-identical across calls")
	}
}

func TestBuildBytes_RoundTrip(t *testing.T) {
	creds := Credentials{Username: "user", Password: "pass"}
	payload := Elem("retrieveDomainRequest",
		Elem("domain",
			Text("name", "example"),
			Text("extension", "com"),
		),
	)

	data, err := BuildBytes(creds, payload)
	require.NoError(t, err)

	doc, err := ParseResponse(data)
	require.NoError(t, err)

	// The parsed tree matches what was built.
	root := doc.Root()
	assert.Equal(t, "openXML", root.Tag)
	req := root.SelectElement("retrieveDomainRequest")
	require.NotNil(t, req)
	domain := req.SelectElement("domain")
	require.NotNil(t, domain)
	assert.Equal(t, "example", domain.SelectElement("name").Text())
	assert.Equal(t, "com", domain.SelectElement("extension").Text())
}

func TestParseResponse_Malformed(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not xml", []byte("definitely not xml")},
		{"truncated", []byte("<reply><code>0</code>")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseResponse(tc.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, apierror.ErrMalformedResponse)
		})
	}
}

func TestReply_AsRoot(t *testing.T) {
	doc, err := ParseResponse([]byte(`<reply><code>0</code><desc>success</desc></reply>`))
	require.NoError(t, err)

	reply, err := Reply(doc)
	require.NoError(t, err)
	assert.Equal(t, 0, reply.Code)
	assert.Equal(t, "success", reply.Desc)
	assert.Nil(t, reply.Data)
	assert.Equal(t, "", reply.DataText())
}

func TestReply_Nested(t *testing.T) {
	doc, err := ParseResponse([]byte(
		`<openXML><reply><code>346</code><desc>Domain not available</desc><data>example.com</data></reply></openXML>`))
	require.NoError(t, err)

	reply, err := Reply(doc)
	require.NoError(t, err)
	assert.Equal(t, 346, reply.Code)
	assert.Equal(t, "Domain not available", reply.Desc)
	assert.Equal(t, "example.com", reply.DataText())
}

func TestReply_Malformed(t *testing.T) {
	t.Run("missing reply", func(t *testing.T) {
		doc, err := ParseResponse([]byte(`<openXML><other/></openXML>`))
		require.NoError(t, err)
		_, err = Reply(doc)
		assert.ErrorIs(t, err, apierror.ErrMalformedResponse)
	})

	t.Run("missing code", func(t *testing.T) {
		doc, err := ParseResponse([]byte(`<reply><desc>no code</desc></reply>`))
		require.NoError(t, err)
		_, err = Reply(doc)
		assert.ErrorIs(t, err, apierror.ErrMalformedResponse)
	})

	t.Run("non-numeric code", func(t *testing.T) {
		doc, err := ParseResponse([]byte(`<reply><code>zero</code></reply>`))
		require.NoError(t, err)
		_, err = Reply(doc)
		assert.ErrorIs(t, err, apierror.ErrMalformedResponse)
	})
}

func TestElem_SkipsNilChildren(t *testing.T) {
	e := Elem("domain",
		Text("name", "example"),
		OptionalText("comment", ""),
		OptionalText("extension", "com"),
	)

	children := e.ChildElements()
	require.Len(t, children, 2)
	assert.Equal(t, "name", children[0].Tag)
	assert.Equal(t, "extension", children[1].Tag)
}

func TestArray_Items(t *testing.T) {
	arr := Array(
		Item(Text("name", "a")),
		Item(Text("name", "b")),
	)

	assert.Equal(t, "array", arr.Tag)
	items := arr.ChildElements()
	require.Len(t, items, 2)
	assert.Equal(t, "item", items[0].Tag)
	assert.Equal(t, "a", items[0].SelectElement("name").Text())
	assert.Equal(t, "b", items[1].SelectElement("name").Text())
}
