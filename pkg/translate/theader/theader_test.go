package theader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the-dev-tools/organizer/pkg/idwrap"
	"github.com/the-dev-tools/organizer/pkg/model/mheader"
	"github.com/the-dev-tools/organizer/pkg/translate/theader"
)

func TestFromDTO(t *testing.T) {
	id := idwrap.NewNow()
	sort := int64(7)

	header, err := theader.FromDTO(mheader.HeaderDTO{
		ID:       id.String(),
		Key:      "Accept",
		Value:    "application/json",
		IsActive: true,
		Sort:     &sort,
	})
	require.NoError(t, err)
	assert.Equal(t, id, header.ID)
	assert.Equal(t, "Accept", header.Key)
	assert.Equal(t, "application/json", header.Value)
	assert.True(t, header.Enabled)
	assert.Equal(t, int64(7), header.Sort)
}

func TestFromDTOAllowsEmptyAndGeneratesID(t *testing.T) {
	header, err := theader.FromDTO(mheader.HeaderDTO{})
	require.NoError(t, err)
	assert.False(t, header.ID.IsZero())
	assert.Empty(t, header.Key)
	assert.Empty(t, header.Value)
	assert.False(t, header.Enabled)
	assert.Zero(t, header.Sort)
}

func TestFromDTOBadID(t *testing.T) {
	_, err := theader.FromDTO(mheader.HeaderDTO{ID: "nope"})
	require.Error(t, err)
}

func TestClone(t *testing.T) {
	original := mheader.Header{
		ID:       idwrap.NewNow(),
		RecordID: idwrap.NewNow(),
		Key:      "X-Trace",
		Value:    "1",
		Enabled:  true,
		Sort:     3,
	}

	clone := theader.Clone(original)
	require.NotEqual(t, original.ID, clone.ID)
	assert.Equal(t, original.RecordID, clone.RecordID)
	assert.Equal(t, original.Key, clone.Key)
	assert.Equal(t, original.Value, clone.Value)
	assert.Equal(t, original.Enabled, clone.Enabled)
	assert.Equal(t, original.Sort, clone.Sort)

	clone.Value = "2"
	assert.Equal(t, "1", original.Value)
}

func TestFormatActive(t *testing.T) {
	headers := []mheader.Header{
		{Key: "A", Value: "1", Enabled: true},
		{Key: "A", Value: "2", Enabled: true},
		{Key: "B", Value: "3", Enabled: false},
	}

	assert.Equal(t, map[string]string{"A": "2"}, theader.FormatActive(headers))
	assert.Empty(t, theader.FormatActive(nil))
}

func TestFormatActiveInactiveDoesNotOverride(t *testing.T) {
	headers := []mheader.Header{
		{Key: "A", Value: "1", Enabled: true},
		{Key: "A", Value: "2", Enabled: false},
	}

	assert.Equal(t, map[string]string{"A": "1"}, theader.FormatActive(headers))
}

func TestReorder(t *testing.T) {
	headers := []mheader.Header{
		{Key: "a", Sort: 10},
		{Key: "b", Sort: 20},
		{Key: "c", Sort: 30},
		{Key: "d", Sort: 40},
	}

	moved, err := theader.Reorder(headers, 0, 2)
	require.NoError(t, err)
	keys := make([]string, len(moved))
	for i, h := range moved {
		keys[i] = h.Key
		assert.Equal(t, int64(i), h.Sort)
	}
	assert.Equal(t, []string{"b", "c", "a", "d"}, keys)
	assert.Equal(t, "a", headers[0].Key, "input must not be modified")

	moved, err = theader.Reorder(headers, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, "d", moved[0].Key)
	assert.Equal(t, "c", moved[3].Key)

	_, err = theader.Reorder(headers, 0, 4)
	require.ErrorIs(t, err, theader.ErrIndexOutOfRange)
}

func TestTrimBlank(t *testing.T) {
	headers := []mheader.Header{
		{Key: "a"},
		{},
		{Value: "v"},
		{},
		{},
	}

	trimmed := theader.TrimBlank(headers)
	require.Len(t, trimmed, 3)
	assert.Equal(t, "v", trimmed[2].Value)
	assert.Empty(t, theader.TrimBlank([]mheader.Header{{}}))
}
