package trecordnest

import (
	"slices"

	"github.com/the-dev-tools/organizer/pkg/idwrap"
	"github.com/the-dev-tools/organizer/pkg/model/mrecord"
)

// BuildTree rebuilds the folder hierarchy of one collection from a flat list.
//
// Children keep the order they have in the input; the store hands records in
// ascending sort. At the top level every root folder comes first and root
// requests follow, whatever their sort. A record whose parent is missing
// from the input is left out together with its subtree.
func BuildTree(records []mrecord.Record) []mrecord.Record {
	visited := make(map[idwrap.IDWrap]struct{}, len(records))
	return nestLevel(records, nil, visited)
}

// nestLevel collects the children of parentID, or the roots when parentID is
// nil. visited is shared across the whole build so no record is placed twice.
func nestLevel(records []mrecord.Record, parentID *idwrap.IDWrap, visited map[idwrap.IDWrap]struct{}) []mrecord.Record {
	var placed, looseRequests []mrecord.Record

	for _, r := range records {
		if _, seen := visited[r.ID]; seen {
			continue
		}

		if parentID == nil {
			if r.ParentID != nil {
				continue
			}
			if !r.IsFolder() {
				visited[r.ID] = struct{}{}
				looseRequests = append(looseRequests, leaf(r))
				continue
			}
		} else if r.ParentID == nil || r.ParentID.Compare(*parentID) != 0 {
			continue
		}

		visited[r.ID] = struct{}{}
		if r.IsFolder() {
			placed = append(placed, folder(records, r, visited))
		} else {
			placed = append(placed, leaf(r))
		}
	}

	return append(placed, looseRequests...)
}

func folder(records []mrecord.Record, r mrecord.Record, visited map[idwrap.IDWrap]struct{}) mrecord.Record {
	node := leaf(r)
	node.Children = nestLevel(records, &node.ID, visited)
	return node
}

// leaf copies r without children. Headers get their own backing array so a
// tree node can be edited without touching the input.
func leaf(r mrecord.Record) mrecord.Record {
	node := r
	node.Headers = slices.Clone(r.Headers)
	node.Children = nil
	return node
}
