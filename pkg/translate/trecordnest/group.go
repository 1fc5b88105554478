package trecordnest

import (
	"github.com/the-dev-tools/organizer/pkg/idwrap"
	"github.com/the-dev-tools/organizer/pkg/model/mrecord"
)

// GroupByCollection buckets a flat multi-collection result by collection and
// builds one tree per bucket. Relative input order is kept inside a bucket.
func GroupByCollection(records []mrecord.Record) map[idwrap.IDWrap][]mrecord.Record {
	buckets := make(map[idwrap.IDWrap][]mrecord.Record)
	for _, r := range records {
		buckets[r.CollectionID] = append(buckets[r.CollectionID], r)
	}

	trees := make(map[idwrap.IDWrap][]mrecord.Record, len(buckets))
	for collectionID, bucket := range buckets {
		trees[collectionID] = BuildTree(bucket)
	}
	return trees
}
