package rrecord_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the-dev-tools/organizer/internal/api"
	"github.com/the-dev-tools/organizer/internal/api/middleware/mwcodec"
	"github.com/the-dev-tools/organizer/internal/api/middleware/mwcompress"
	"github.com/the-dev-tools/organizer/internal/api/middleware/mwlog"
	"github.com/the-dev-tools/organizer/internal/api/rrecord"
	"github.com/the-dev-tools/organizer/pkg/idwrap"
	"github.com/the-dev-tools/organizer/pkg/model/mheader"
	"github.com/the-dev-tools/organizer/pkg/model/mrecord"
	"github.com/the-dev-tools/organizer/pkg/model/mresult"
	"github.com/the-dev-tools/organizer/pkg/testutil"
)

type testClients struct {
	create     *connect.Client[rrecord.RecordSaveRequest, rrecord.RecordSaveResponse]
	get        *connect.Client[rrecord.RecordGetRequest, rrecord.RecordGetResponse]
	tree       *connect.Client[rrecord.RecordTreeRequest, rrecord.RecordTreeResponse]
	reposition *connect.Client[rrecord.RecordRepositionRequest, mresult.Result]
	headers    *connect.Client[rrecord.RecordIDRequest, rrecord.RecordHeadersResponse]
	del        *connect.Client[rrecord.RecordIDRequest, mresult.Result]
	search     *connect.Client[rrecord.RecordSearchRequest, rrecord.RecordListResponse]
	reorder    *connect.Client[rrecord.RecordHeaderReorderRequest, rrecord.RecordHeaderReorderResponse]
}

func setup(t *testing.T) testClients {
	t.Helper()
	ctx := context.Background()
	base := testutil.CreateBaseDB(ctx, t)
	t.Cleanup(base.Close)

	logger := base.Logger()
	srv := rrecord.New(base.GetBaseServices().Rs, logger)
	service, err := rrecord.CreateService(srv, []connect.HandlerOption{
		mwcodec.WithJSONCodec(),
		mwcompress.WithCompression(),
		connect.WithInterceptors(mwlog.NewInterceptor(logger)),
	})
	require.NoError(t, err)

	server := httptest.NewServer(api.NewHandler([]api.Service{*service}))
	t.Cleanup(server.Close)

	opts := append([]connect.ClientOption{mwcodec.WithJSONCodec()}, mwcompress.WithClientCompression()...)
	httpClient := server.Client()
	return testClients{
		create:     connect.NewClient[rrecord.RecordSaveRequest, rrecord.RecordSaveResponse](httpClient, server.URL+rrecord.RecordCreateProcedure, opts...),
		get:        connect.NewClient[rrecord.RecordGetRequest, rrecord.RecordGetResponse](httpClient, server.URL+rrecord.RecordGetProcedure, opts...),
		tree:       connect.NewClient[rrecord.RecordTreeRequest, rrecord.RecordTreeResponse](httpClient, server.URL+rrecord.RecordTreeProcedure, opts...),
		reposition: connect.NewClient[rrecord.RecordRepositionRequest, mresult.Result](httpClient, server.URL+rrecord.RecordRepositionProcedure, opts...),
		headers:    connect.NewClient[rrecord.RecordIDRequest, rrecord.RecordHeadersResponse](httpClient, server.URL+rrecord.RecordHeadersProcedure, opts...),
		del:        connect.NewClient[rrecord.RecordIDRequest, mresult.Result](httpClient, server.URL+rrecord.RecordDeleteProcedure, opts...),
		search:     connect.NewClient[rrecord.RecordSearchRequest, rrecord.RecordListResponse](httpClient, server.URL+rrecord.RecordSearchProcedure, opts...),
		reorder:    connect.NewClient[rrecord.RecordHeaderReorderRequest, rrecord.RecordHeaderReorderResponse](httpClient, server.URL+rrecord.RecordHeaderReorderProcedure, opts...),
	}
}

func create(t *testing.T, c testClients, dto mrecord.RecordDTO) mrecord.RecordDTO {
	t.Helper()
	resp, err := c.create.CallUnary(context.Background(), connect.NewRequest(&rrecord.RecordSaveRequest{Record: dto}))
	require.NoError(t, err)
	require.True(t, resp.Msg.Success, resp.Msg.Message)
	require.NotNil(t, resp.Msg.Record)
	return *resp.Msg.Record
}

func TestRecordCreateAndTree(t *testing.T) {
	c := setup(t)
	ctx := context.Background()
	col := idwrap.NewNow().String()

	leaf := create(t, c, mrecord.RecordDTO{CollectionID: col, Name: "leafX", Method: "GET", Category: mrecord.CategoryRequest})
	folder := create(t, c, mrecord.RecordDTO{CollectionID: col, Name: "folderA", Category: mrecord.CategoryFolder})
	child := create(t, c, mrecord.RecordDTO{CollectionID: col, Pid: folder.ID, Name: "reqB", Method: "POST", Category: mrecord.CategoryRequest})
	assert.Greater(t, folder.Sort, leaf.Sort)
	assert.Greater(t, child.Sort, folder.Sort)

	resp, err := c.tree.CallUnary(ctx, connect.NewRequest(&rrecord.RecordTreeRequest{CollectionIDs: []string{col}}))
	require.NoError(t, err)
	tree := resp.Msg.Collections[col]
	require.Len(t, tree, 2)
	assert.Equal(t, "folderA", tree[0].Name)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "reqB", tree[0].Children[0].Name)
	assert.Equal(t, folder.ID, tree[0].Children[0].Pid)
	assert.Equal(t, "leafX", tree[1].Name)
	assert.NotEmpty(t, resp.Header().Get(mwlog.HeaderRequestID))
}

func TestRecordCreateWithoutName(t *testing.T) {
	c := setup(t)
	col := idwrap.NewNow().String()

	resp, err := c.create.CallUnary(context.Background(), connect.NewRequest(&rrecord.RecordSaveRequest{
		Record: mrecord.RecordDTO{CollectionID: col},
	}))
	require.NoError(t, err)
	assert.False(t, resp.Msg.Success)
	assert.Equal(t, mresult.MessageRecordCreateFailedOnName, resp.Msg.Message)
	assert.Nil(t, resp.Msg.Record)
}

func TestRecordHeadersActiveOnly(t *testing.T) {
	c := setup(t)
	ctx := context.Background()

	rec := create(t, c, mrecord.RecordDTO{
		CollectionID: idwrap.NewNow().String(),
		Name:         "with headers",
		Category:     mrecord.CategoryRequest,
		Headers: []mheader.HeaderDTO{
			{Key: "A", Value: "1", IsActive: true},
			{Key: "A", Value: "2", IsActive: true},
			{Key: "B", Value: "3", IsActive: false},
		},
	})

	resp, err := c.headers.CallUnary(ctx, connect.NewRequest(&rrecord.RecordIDRequest{RecordID: rec.ID}))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "2"}, resp.Msg.Headers)

	got, err := c.get.CallUnary(ctx, connect.NewRequest(&rrecord.RecordGetRequest{RecordID: rec.ID, IncludeHeaders: true}))
	require.NoError(t, err)
	require.Len(t, got.Msg.Record.Headers, 3)
	assert.Equal(t, "B", got.Msg.Record.Headers[2].Key)
}

func TestRecordHeaderReorder(t *testing.T) {
	c := setup(t)
	ctx := context.Background()

	rec := create(t, c, mrecord.RecordDTO{
		CollectionID: idwrap.NewNow().String(),
		Name:         "reorder",
		Category:     mrecord.CategoryRequest,
		Headers: []mheader.HeaderDTO{
			{Key: "A", Value: "1", IsActive: true},
			{Key: "B", Value: "2", IsActive: true},
			{Key: "C", Value: "3", IsActive: true},
		},
	})

	resp, err := c.reorder.CallUnary(ctx, connect.NewRequest(&rrecord.RecordHeaderReorderRequest{RecordID: rec.ID, OldIndex: 2, NewIndex: 0}))
	require.NoError(t, err)
	require.Len(t, resp.Msg.Headers, 3)
	assert.Equal(t, "C", resp.Msg.Headers[0].Key)

	got, err := c.get.CallUnary(ctx, connect.NewRequest(&rrecord.RecordGetRequest{RecordID: rec.ID, IncludeHeaders: true}))
	require.NoError(t, err)
	keys := make([]string, 0, 3)
	for i, h := range got.Msg.Record.Headers {
		keys = append(keys, h.Key)
		require.NotNil(t, h.Sort)
		assert.Equal(t, int64(i), *h.Sort)
	}
	assert.Equal(t, []string{"C", "A", "B"}, keys)

	_, err = c.reorder.CallUnary(ctx, connect.NewRequest(&rrecord.RecordHeaderReorderRequest{RecordID: rec.ID, OldIndex: 0, NewIndex: 3}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = c.reorder.CallUnary(ctx, connect.NewRequest(&rrecord.RecordHeaderReorderRequest{RecordID: idwrap.NewNow().String()}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestRecordReposition(t *testing.T) {
	c := setup(t)
	ctx := context.Background()
	col := idwrap.NewNow().String()

	a := create(t, c, mrecord.RecordDTO{CollectionID: col, Name: "a", Category: mrecord.CategoryRequest})
	b := create(t, c, mrecord.RecordDTO{CollectionID: col, Name: "b", Category: mrecord.CategoryRequest})

	resp, err := c.reposition.CallUnary(ctx, connect.NewRequest(&rrecord.RecordRepositionRequest{
		RecordID:           b.ID,
		TargetCollectionID: col,
		NewSort:            &a.Sort,
	}))
	require.NoError(t, err)
	assert.Equal(t, mresult.Ok(mresult.MessageRecordSortSuccess), *resp.Msg)

	got, err := c.get.CallUnary(ctx, connect.NewRequest(&rrecord.RecordGetRequest{RecordID: a.ID}))
	require.NoError(t, err)
	assert.Equal(t, a.Sort+1, got.Msg.Record.Sort)

	_, err = c.reposition.CallUnary(ctx, connect.NewRequest(&rrecord.RecordRepositionRequest{
		RecordID:           b.ID,
		TargetCollectionID: col,
	}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	zero := int64(0)
	_, err = c.reposition.CallUnary(ctx, connect.NewRequest(&rrecord.RecordRepositionRequest{
		RecordID:           idwrap.NewNow().String(),
		TargetCollectionID: col,
		NewSort:            &zero,
	}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestRecordErrors(t *testing.T) {
	c := setup(t)
	ctx := context.Background()

	_, err := c.get.CallUnary(ctx, connect.NewRequest(&rrecord.RecordGetRequest{RecordID: "not-a-ulid"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = c.get.CallUnary(ctx, connect.NewRequest(&rrecord.RecordGetRequest{RecordID: idwrap.NewNow().String()}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = c.del.CallUnary(ctx, connect.NewRequest(&rrecord.RecordIDRequest{RecordID: idwrap.NewNow().String()}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = c.create.CallUnary(ctx, connect.NewRequest(&rrecord.RecordSaveRequest{
		Record: mrecord.RecordDTO{Name: "bad parent", Pid: "nope"},
	}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestRecordSearchAndDelete(t *testing.T) {
	c := setup(t)
	ctx := context.Background()
	col := idwrap.NewNow().String()

	create(t, c, mrecord.RecordDTO{CollectionID: col, Name: "Get users", Category: mrecord.CategoryRequest})
	target := create(t, c, mrecord.RecordDTO{CollectionID: col, Name: "get user", Category: mrecord.CategoryRequest})
	create(t, c, mrecord.RecordDTO{CollectionID: col, Name: "Login", Category: mrecord.CategoryRequest})

	found, err := c.search.CallUnary(ctx, connect.NewRequest(&rrecord.RecordSearchRequest{CollectionID: col, Query: "user"}))
	require.NoError(t, err)
	require.Len(t, found.Msg.Items, 2)
	assert.Equal(t, target.ID, found.Msg.Items[0].ID)

	res, err := c.del.CallUnary(ctx, connect.NewRequest(&rrecord.RecordIDRequest{RecordID: target.ID}))
	require.NoError(t, err)
	assert.True(t, res.Msg.Success)

	found, err = c.search.CallUnary(ctx, connect.NewRequest(&rrecord.RecordSearchRequest{CollectionID: col, Query: "user"}))
	require.NoError(t, err)
	require.Len(t, found.Msg.Items, 1)
	assert.Equal(t, "Get users", found.Msg.Items[0].Name)
}
