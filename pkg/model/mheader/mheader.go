package mheader

import (
	"github.com/the-dev-tools/organizer/pkg/idwrap"
)

type Header struct {
	Key      string
	Value    string
	Enabled  bool
	Sort     int64
	ID       idwrap.IDWrap
	RecordID idwrap.IDWrap
}

func (h Header) IsEnabled() bool {
	return h.Enabled
}

// IsBlank reports a row with neither key nor value, the trailing row the
// key/value editor always keeps open.
func (h Header) IsBlank() bool {
	return h.Key == "" && h.Value == ""
}

// HeaderDTO is the wire shape of a header. Sort is optional; a header
// without it takes its position in the owning list.
type HeaderDTO struct {
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Key      string `json:"key" yaml:"key"`
	Value    string `json:"value" yaml:"value"`
	IsActive bool   `json:"isActive" yaml:"isActive"`
	Sort     *int64 `json:"sort,omitempty" yaml:"sort,omitempty"`
}
