// Package mwcodec provides the JSON codec the record service speaks.
package mwcodec

import (
	"connectrpc.com/connect"
	"github.com/goccy/go-json"
)

// jsonCodec marshals plain Go request and response structs with goccy/go-json.
// It registers as "json", so it serves application/json and replaces the
// default protobuf JSON codec.
type jsonCodec struct {
	name string
}

var _ connect.Codec = (*jsonCodec)(nil)

func (c *jsonCodec) Name() string {
	return c.name
}

func (c *jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (c *jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

func NewJSONCodec() connect.Codec {
	return &jsonCodec{name: "json"}
}

// WithJSONCodec returns an option usable on both handlers and clients.
func WithJSONCodec() connect.Option {
	return connect.WithCodec(NewJSONCodec())
}
