package envelope

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/leifj/signedxml"

	"github.com/lagowski/go-openprovider/pkg/apierror"
)

// Credentials identifies an account to the API. Username is required, and
// exactly one of Password or Hash must be set.
type Credentials struct {
	Username string
	Password string
	Hash     string
}

// Validate checks the credential invariant.
func (c Credentials) Validate() error {
	if c.Username == "" {
		return fmt.Errorf("%w: username is required", apierror.ErrConfiguration)
	}
	if (c.Password == "") == (c.Hash == "") {
		return fmt.Errorf("%w: provide either a password or a password hash", apierror.ErrConfiguration)
	}
	return nil
}

// Build constructs the request document: an openXML root holding the
// credentials element followed by the payload subtree. The payload element
// is reparented into the returned document.
func Build(creds Credentials, payload *etree.Element) (*etree.Document, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, fmt.Errorf("payload is required")
	}

	doc := etree.NewDocument()
	root := doc.CreateElement("openXML")
	root.AddChild(Elem("credentials",
		Text("username", creds.Username),
		OptionalText("password", creds.Password),
		OptionalText("hash", creds.Hash),
	))
	root.AddChild(payload)

	return doc, nil
}

// Serialize renders the document in Exclusive XML Canonicalization form.
// Output is byte-identical across calls for the same logical document.
func Serialize(doc *etree.Document) ([]byte, error) {
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}

	canonicalizer := signedxml.ExclusiveCanonicalization{WithComments: false}
	canonical, err := canonicalizer.ProcessElement(root, "")
	if err != nil {
		return nil, fmt.Errorf("canonicalizing envelope: %w", err)
	}

	return []byte(canonical), nil
}

// BuildBytes builds and serializes a request envelope in one step.
func BuildBytes(creds Credentials, payload *etree.Element) ([]byte, error) {
	doc, err := Build(creds, payload)
	if err != nil {
		return nil, err
	}
	return Serialize(doc)
}

// ParseResponse parses raw response bytes into a document. Bytes that are
// not well-formed XML yield an error wrapping apierror.ErrMalformedResponse.
func ParseResponse(data []byte) (*etree.Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty response body", apierror.ErrMalformedResponse)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", apierror.ErrMalformedResponse, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: no root element", apierror.ErrMalformedResponse)
	}

	return doc, nil
}

// ReplyInfo is the status envelope the API wraps every response in.
type ReplyInfo struct {
	Code int
	Desc string
	// Data is the optional data subtree, nil when the reply has none.
	Data *etree.Element
}

// DataText returns the direct character data of the data element, or the
// empty string when the reply carries no data.
func (r *ReplyInfo) DataText() string {
	if r.Data == nil {
		return ""
	}
	return r.Data.Text()
}

// Reply locates the reply element and extracts its code, description and
// data. The reply element is either the document root itself or a direct
// child of it. A missing reply element or a non-numeric code yields an
// error wrapping apierror.ErrMalformedResponse.
func Reply(doc *etree.Document) (*ReplyInfo, error) {
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", apierror.ErrMalformedResponse)
	}

	reply := root
	if root.Tag != "reply" {
		reply = root.SelectElement("reply")
		if reply == nil {
			return nil, fmt.Errorf("%w: missing reply element", apierror.ErrMalformedResponse)
		}
	}

	codeElem := reply.SelectElement("code")
	if codeElem == nil {
		return nil, fmt.Errorf("%w: reply has no code", apierror.ErrMalformedResponse)
	}
	code, err := strconv.Atoi(strings.TrimSpace(codeElem.Text()))
	if err != nil {
		return nil, fmt.Errorf("%w: non-numeric reply code %q", apierror.ErrMalformedResponse, codeElem.Text())
	}

	info := &ReplyInfo{Code: code}
	if desc := reply.SelectElement("desc"); desc != nil {
		info.Desc = desc.Text()
	}
	info.Data = reply.SelectElement("data")

	return info, nil
}
