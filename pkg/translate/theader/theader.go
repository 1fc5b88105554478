package theader

import (
	"errors"
	"fmt"

	"github.com/the-dev-tools/organizer/pkg/idwrap"
	"github.com/the-dev-tools/organizer/pkg/model/mheader"
	"github.com/the-dev-tools/organizer/pkg/sort/sortenabled"
)

var ErrIndexOutOfRange = errors.New("header index out of range")

// FromDTO maps the wire header onto the model field by field. Key and value
// are not validated; empty strings are legal. A missing id gets a new one.
func FromDTO(dto mheader.HeaderDTO) (mheader.Header, error) {
	id := idwrap.NewNow()
	if dto.ID != "" {
		parsed, err := idwrap.NewText(dto.ID)
		if err != nil {
			return mheader.Header{}, fmt.Errorf("header id: %w", err)
		}
		id = parsed
	}

	header := mheader.Header{
		ID:      id,
		Key:     dto.Key,
		Value:   dto.Value,
		Enabled: dto.IsActive,
	}
	if dto.Sort != nil {
		header.Sort = *dto.Sort
	}
	return header, nil
}

func ToDTO(h mheader.Header) mheader.HeaderDTO {
	sort := h.Sort
	return mheader.HeaderDTO{
		ID:       h.ID.String(),
		Key:      h.Key,
		Value:    h.Value,
		IsActive: h.Enabled,
		Sort:     &sort,
	}
}

// Clone copies every field by value under a new id. The record link is kept;
// callers cloning a whole record re-point it.
func Clone(h mheader.Header) mheader.Header {
	return mheader.Header{
		ID:       idwrap.NewNow(),
		RecordID: h.RecordID,
		Key:      h.Key,
		Value:    h.Value,
		Enabled:  h.Enabled,
		Sort:     h.Sort,
	}
}

func CloneAll(headers []mheader.Header) []mheader.Header {
	if headers == nil {
		return nil
	}
	out := make([]mheader.Header, len(headers))
	for i, h := range headers {
		out[i] = Clone(h)
	}
	return out
}

// FormatActive folds the enabled headers into a key/value map for request
// execution. A key repeated among active headers keeps its last value.
func FormatActive(headers []mheader.Header) map[string]string {
	active := sortenabled.FilterByState(headers, true)
	formatted := make(map[string]string, len(active))
	for _, h := range active {
		formatted[h.Key] = h.Value
	}
	return formatted
}

// Reorder moves the header at oldIndex to newIndex and renumbers Sort from
// zero so the list stays dense.
func Reorder(headers []mheader.Header, oldIndex, newIndex int) ([]mheader.Header, error) {
	n := len(headers)
	if oldIndex < 0 || oldIndex >= n || newIndex < 0 || newIndex >= n {
		return nil, fmt.Errorf("%w: move %d -> %d in %d headers", ErrIndexOutOfRange, oldIndex, newIndex, n)
	}

	out := make([]mheader.Header, 0, n)
	moved := headers[oldIndex]
	for i, h := range headers {
		if i != oldIndex {
			out = append(out, h)
		}
	}
	out = append(out[:newIndex], append([]mheader.Header{moved}, out[newIndex:]...)...)

	for i := range out {
		out[i].Sort = int64(i)
	}
	return out, nil
}

// TrimBlank drops trailing rows with neither key nor value.
func TrimBlank(headers []mheader.Header) []mheader.Header {
	end := len(headers)
	for end > 0 && headers[end-1].IsBlank() {
		end--
	}
	return headers[:end]
}
