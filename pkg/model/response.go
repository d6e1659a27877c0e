package model

import (
	"github.com/beevik/etree"

	"github.com/lagowski/go-openprovider/pkg/envelope"
)

// Response wraps a successful (code zero) API reply.
type Response struct {
	doc   *etree.Document
	reply *envelope.ReplyInfo
	data  *Model
}

// NewResponse extracts the reply envelope from a parsed response
// document. The document's reply element must carry a numeric code;
// otherwise the envelope package's malformed-response error is returned.
func NewResponse(doc *etree.Document) (*Response, error) {
	reply, err := envelope.Reply(doc)
	if err != nil {
		return nil, err
	}
	return &Response{
		doc:   doc,
		reply: reply,
		data:  New(reply.Data),
	}, nil
}

// Code returns the numeric reply code.
func (r *Response) Code() int {
	return r.reply.Code
}

// Desc returns the reply description.
func (r *Response) Desc() string {
	return r.reply.Desc
}

// Data returns a model over the reply's data subtree. The model is empty
// when the reply carries no data.
func (r *Response) Data() *Model {
	return r.data
}

// Tree returns the full parsed response document.
func (r *Response) Tree() *etree.Document {
	return r.doc
}
