package mrecord

import (
	"time"

	"github.com/the-dev-tools/organizer/pkg/idwrap"
	"github.com/the-dev-tools/organizer/pkg/model/mheader"
)

type Category int8

const (
	CategoryUnspecified Category = 0
	CategoryRequest     Category = 1
	CategoryFolder      Category = 2
)

func (c Category) String() string {
	switch c {
	case CategoryRequest:
		return "request"
	case CategoryFolder:
		return "folder"
	default:
		return "unspecified"
	}
}

// Record is a stored request or folder node. ParentID and Sort are the only
// durable structural fields; Children is filled transiently when a tree is
// rebuilt for display.
type Record struct {
	Created      time.Time
	Name         string
	Url          string
	Method       string
	Body         string
	Test         string
	Sort         int64
	Category     Category
	ID           idwrap.IDWrap
	CollectionID idwrap.IDWrap
	ParentID     *idwrap.IDWrap
	Headers      []mheader.Header
	Children     []Record
}

func (r Record) IsFolder() bool {
	return r.Category == CategoryFolder
}

// RecordDTO is the wire shape for record create/update and for read output.
// Children is only populated on tree output.
type RecordDTO struct {
	ID           string              `json:"id,omitempty" yaml:"id,omitempty"`
	Url          string              `json:"url" yaml:"url"`
	Pid          string              `json:"pid,omitempty" yaml:"pid,omitempty"`
	Body         string              `json:"body,omitempty" yaml:"body,omitempty"`
	Headers      []mheader.HeaderDTO `json:"headers,omitempty" yaml:"headers,omitempty"`
	Test         string              `json:"test,omitempty" yaml:"test,omitempty"`
	Sort         int64               `json:"sort,omitempty" yaml:"sort,omitempty"`
	Method       string              `json:"method" yaml:"method"`
	CollectionID string              `json:"collectionId" yaml:"collectionId"`
	Name         string              `json:"name" yaml:"name"`
	Category     Category            `json:"category" yaml:"category"`
	Children     []RecordDTO         `json:"children,omitempty" yaml:"children,omitempty"`
}
