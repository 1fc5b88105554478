package trecord

import (
	"fmt"

	"github.com/the-dev-tools/organizer/pkg/dbtime"
	"github.com/the-dev-tools/organizer/pkg/idwrap"
	"github.com/the-dev-tools/organizer/pkg/model/mheader"
	"github.com/the-dev-tools/organizer/pkg/model/mrecord"
	"github.com/the-dev-tools/organizer/pkg/translate/theader"
)

// FromDTO builds a record graph from the wire shape. Missing fields stay at
// their zero value and nothing is validated here; the name check happens when
// the record is saved. Ids that are present must parse.
func FromDTO(dto mrecord.RecordDTO) (mrecord.Record, error) {
	id := idwrap.NewNow()
	if dto.ID != "" {
		parsed, err := idwrap.NewText(dto.ID)
		if err != nil {
			return mrecord.Record{}, fmt.Errorf("record id: %w", err)
		}
		id = parsed
	}

	var collectionID idwrap.IDWrap
	if dto.CollectionID != "" {
		parsed, err := idwrap.NewText(dto.CollectionID)
		if err != nil {
			return mrecord.Record{}, fmt.Errorf("collection id: %w", err)
		}
		collectionID = parsed
	}

	parentID, err := idwrap.NewTextOptional(dto.Pid)
	if err != nil {
		return mrecord.Record{}, fmt.Errorf("parent id: %w", err)
	}

	record := mrecord.Record{
		ID:           id,
		CollectionID: collectionID,
		ParentID:     parentID,
		Name:         dto.Name,
		Url:          dto.Url,
		Method:       dto.Method,
		Body:         dto.Body,
		Test:         dto.Test,
		Sort:         dto.Sort,
		Category:     dto.Category,
	}

	if dto.Headers != nil {
		record.Headers = make([]mheader.Header, len(dto.Headers))
		for i, hdto := range dto.Headers {
			header, err := theader.FromDTO(hdto)
			if err != nil {
				return mrecord.Record{}, err
			}
			if hdto.Sort == nil {
				header.Sort = int64(i)
			}
			header.RecordID = record.ID
			record.Headers[i] = header
		}
	}

	return record, nil
}

// Clone copies a record field by field under a new id with freshly cloned
// headers and a new creation time. Nothing mutable is shared with the source.
func Clone(r mrecord.Record) mrecord.Record {
	clone := mrecord.Record{
		ID:           idwrap.NewNow(),
		CollectionID: r.CollectionID,
		ParentID:     idwrap.Clone(r.ParentID),
		Name:         r.Name,
		Url:          r.Url,
		Method:       r.Method,
		Body:         r.Body,
		Test:         r.Test,
		Sort:         r.Sort,
		Category:     r.Category,
		Created:      dbtime.DBNow(),
	}

	clone.Headers = theader.CloneAll(r.Headers)
	for i := range clone.Headers {
		clone.Headers[i].RecordID = clone.ID
	}

	if r.Children != nil {
		clone.Children = make([]mrecord.Record, len(r.Children))
		for i, child := range r.Children {
			cc := Clone(child)
			if child.ParentID != nil && child.ParentID.Compare(r.ID) == 0 {
				parent := clone.ID
				cc.ParentID = &parent
			}
			clone.Children[i] = cc
		}
	}

	return clone
}

func ToDTO(r mrecord.Record) mrecord.RecordDTO {
	dto := mrecord.RecordDTO{
		ID:           r.ID.String(),
		Url:          r.Url,
		Pid:          idwrap.OptionalString(r.ParentID),
		Body:         r.Body,
		Test:         r.Test,
		Sort:         r.Sort,
		Method:       r.Method,
		CollectionID: r.CollectionID.String(),
		Name:         r.Name,
		Category:     r.Category,
	}

	if len(r.Headers) > 0 {
		dto.Headers = make([]mheader.HeaderDTO, len(r.Headers))
		for i, h := range r.Headers {
			dto.Headers[i] = theader.ToDTO(h)
		}
	}

	if len(r.Children) > 0 {
		dto.Children = make([]mrecord.RecordDTO, len(r.Children))
		for i, child := range r.Children {
			dto.Children[i] = ToDTO(child)
		}
	}

	return dto
}

func ToDTOs(records []mrecord.Record) []mrecord.RecordDTO {
	out := make([]mrecord.RecordDTO, len(records))
	for i, r := range records {
		out[i] = ToDTO(r)
	}
	return out
}
