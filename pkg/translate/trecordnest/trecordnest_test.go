package trecordnest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the-dev-tools/organizer/pkg/idwrap"
	"github.com/the-dev-tools/organizer/pkg/model/mheader"
	"github.com/the-dev-tools/organizer/pkg/model/mrecord"
	"github.com/the-dev-tools/organizer/pkg/translate/trecordnest"
)

func folder(name string, parent *idwrap.IDWrap) mrecord.Record {
	return mrecord.Record{ID: idwrap.NewNow(), Name: name, ParentID: parent, Category: mrecord.CategoryFolder}
}

func request(name string, parent *idwrap.IDWrap) mrecord.Record {
	return mrecord.Record{ID: idwrap.NewNow(), Name: name, ParentID: parent, Category: mrecord.CategoryRequest}
}

func names(records []mrecord.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func TestBuildTreeLooseRequestAfterFolders(t *testing.T) {
	folderA := folder("folderA", nil)
	leafX := request("leafX", nil)
	reqB := request("reqB", &folderA.ID)

	tree := trecordnest.BuildTree([]mrecord.Record{folderA, leafX, reqB})

	require.Equal(t, []string{"folderA", "leafX"}, names(tree))
	assert.Equal(t, []string{"reqB"}, names(tree[0].Children))
	assert.Empty(t, tree[1].Children)
}

func TestBuildTreeNested(t *testing.T) {
	// root/
	//   sub1/
	//     deep
	//   api1
	//   sub2/
	// api0
	root := folder("root", nil)
	sub1 := folder("sub1", &root.ID)
	api1 := request("api1", &root.ID)
	sub2 := folder("sub2", &root.ID)
	deep := request("deep", &sub1.ID)
	api0 := request("api0", nil)

	tree := trecordnest.BuildTree([]mrecord.Record{api0, deep, sub2, root, api1, sub1})

	require.Equal(t, []string{"root", "api0"}, names(tree))
	// children keep input order
	require.Equal(t, []string{"sub2", "api1", "sub1"}, names(tree[0].Children))
	assert.Empty(t, tree[0].Children[0].Children)
	assert.Equal(t, []string{"deep"}, names(tree[0].Children[2].Children))
}

func TestBuildTreeIgnoresSort(t *testing.T) {
	f := folder("f", nil)
	f.Sort = 100
	r := request("r", nil)
	r.Sort = 1

	tree := trecordnest.BuildTree([]mrecord.Record{r, f})
	assert.Equal(t, []string{"f", "r"}, names(tree))
}

func TestBuildTreeDanglingParentOmitted(t *testing.T) {
	missing := idwrap.NewNow()
	root := folder("root", nil)
	orphanFolder := folder("orphanFolder", &missing)
	underOrphan := request("underOrphan", &orphanFolder.ID)
	orphanRequest := request("orphanRequest", &missing)
	ok := request("ok", &root.ID)

	var tree []mrecord.Record
	require.NotPanics(t, func() {
		tree = trecordnest.BuildTree([]mrecord.Record{root, orphanFolder, underOrphan, orphanRequest, ok})
	})

	var all []string
	var walk func([]mrecord.Record)
	walk = func(nodes []mrecord.Record) {
		for _, n := range nodes {
			all = append(all, n.Name)
			walk(n.Children)
		}
	}
	walk(tree)

	assert.ElementsMatch(t, []string{"root", "ok"}, all)
}

func TestBuildTreeCycleAndDuplicates(t *testing.T) {
	a := folder("a", nil)
	b := folder("b", nil)
	c := folder("c", nil)
	b.ParentID = &c.ID
	c.ParentID = &b.ID
	self := folder("self", nil)
	self.ParentID = &self.ID

	tree := trecordnest.BuildTree([]mrecord.Record{a, b, c, self, a})
	assert.Equal(t, []string{"a"}, names(tree))
}

func TestBuildTreeRequestsDoNotNest(t *testing.T) {
	parent := request("parent", nil)
	child := request("child", &parent.ID)

	tree := trecordnest.BuildTree([]mrecord.Record{parent, child})
	require.Equal(t, []string{"parent"}, names(tree))
	assert.Empty(t, tree[0].Children)
}

func TestBuildTreeDoesNotMutateInput(t *testing.T) {
	root := folder("root", nil)
	child := request("child", &root.ID)
	input := []mrecord.Record{root, child}

	tree := trecordnest.BuildTree(input)
	require.Len(t, tree[0].Children, 1)
	assert.Nil(t, input[0].Children)
}

func TestBuildTreeCopiesHeaders(t *testing.T) {
	root := folder("root", nil)
	root.Headers = []mheader.Header{{Key: "X", Value: "folder"}}
	child := request("child", &root.ID)
	child.Headers = []mheader.Header{{Key: "A", Value: "original"}}
	input := []mrecord.Record{root, child}

	tree := trecordnest.BuildTree(input)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Children, 1)

	tree[0].Headers[0].Value = "changed"
	tree[0].Children[0].Headers[0].Value = "changed"

	assert.Equal(t, "folder", input[0].Headers[0].Value)
	assert.Equal(t, "original", input[1].Headers[0].Value)
}

func TestBuildTreeEmpty(t *testing.T) {
	assert.Empty(t, trecordnest.BuildTree(nil))
}

func TestGroupByCollection(t *testing.T) {
	colA := idwrap.NewNow()
	colB := idwrap.NewNow()

	fa := folder("fa", nil)
	fa.CollectionID = colA
	ra := request("ra", &fa.ID)
	ra.CollectionID = colA
	rootA := request("rootA", nil)
	rootA.CollectionID = colA

	rb := request("rb", nil)
	rb.CollectionID = colB

	grouped := trecordnest.GroupByCollection([]mrecord.Record{rootA, rb, ra, fa})

	require.Len(t, grouped, 2)
	require.Equal(t, []string{"fa", "rootA"}, names(grouped[colA]))
	assert.Equal(t, []string{"ra"}, names(grouped[colA][0].Children))
	assert.Equal(t, []string{"rb"}, names(grouped[colB]))

	_, ok := grouped[idwrap.NewNow()]
	assert.False(t, ok)
	assert.Empty(t, trecordnest.GroupByCollection(nil))
}
