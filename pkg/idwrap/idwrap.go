package idwrap

import (
	"database/sql/driver"
	"fmt"

	"github.com/oklog/ulid/v2"
)

// IDWrap is the identifier type for records, headers and collections.
// It stores as 16 raw bytes and travels as the canonical ULID string.
type IDWrap struct {
	ulid ulid.ULID
}

func NewNow() IDWrap {
	return IDWrap{ulid: ulid.Make()}
}

func NewText(ulidString string) (IDWrap, error) {
	id, err := ulid.Parse(ulidString)
	if err != nil {
		return IDWrap{}, fmt.Errorf("parse id %q: %w", ulidString, err)
	}
	return IDWrap{ulid: id}, nil
}

// NewTextOptional parses an optional id; an empty string yields nil.
func NewTextOptional(ulidString string) (*IDWrap, error) {
	if ulidString == "" {
		return nil, nil
	}
	id, err := NewText(ulidString)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (u IDWrap) String() string {
	return u.ulid.String()
}

func (u IDWrap) Compare(id IDWrap) int {
	return u.ulid.Compare(id.ulid)
}

func (u IDWrap) IsZero() bool {
	return u.ulid == ulid.ULID{}
}

// Equal reports whether two optional ids are both nil or hold the same value.
func Equal(a, b *IDWrap) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Compare(*b) == 0
}

// Clone returns a fresh pointer to a copy of id, or nil.
func Clone(id *IDWrap) *IDWrap {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

// OptionalString renders an optional id, empty for nil.
func OptionalString(id *IDWrap) string {
	if id == nil {
		return ""
	}
	return id.String()
}

// SQL driver value
func (u IDWrap) Value() (driver.Value, error) {
	return u.ulid.Value()
}

func (u *IDWrap) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return u.ulid.UnmarshalBinary(v)
	case string:
		return u.ulid.Scan(v)
	default:
		return fmt.Errorf("idwrap: cannot scan %T", value)
	}
}
