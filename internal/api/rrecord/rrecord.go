package rrecord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/the-dev-tools/organizer/internal/api"
	"github.com/the-dev-tools/organizer/pkg/idwrap"
	"github.com/the-dev-tools/organizer/pkg/model/mrecord"
	"github.com/the-dev-tools/organizer/pkg/model/mresult"
	"github.com/the-dev-tools/organizer/pkg/service/srecord"
	"github.com/the-dev-tools/organizer/pkg/translate/tgeneric"
	"github.com/the-dev-tools/organizer/pkg/translate/theader"
	"github.com/the-dev-tools/organizer/pkg/translate/trecord"
)

type RecordServiceRPC struct {
	rs     *srecord.RecordService
	logger *slog.Logger
}

func New(rs *srecord.RecordService, logger *slog.Logger) RecordServiceRPC {
	return RecordServiceRPC{
		rs:     rs,
		logger: logger,
	}
}

func CreateService(srv RecordServiceRPC, options []connect.HandlerOption) (*api.Service, error) {
	mux := http.NewServeMux()
	mux.Handle(RecordCreateProcedure, connect.NewUnaryHandler(RecordCreateProcedure, srv.RecordCreate, options...))
	mux.Handle(RecordUpdateProcedure, connect.NewUnaryHandler(RecordUpdateProcedure, srv.RecordUpdate, options...))
	mux.Handle(RecordGetProcedure, connect.NewUnaryHandler(RecordGetProcedure, srv.RecordGet, options...))
	mux.Handle(RecordListProcedure, connect.NewUnaryHandler(RecordListProcedure, srv.RecordList, options...))
	mux.Handle(RecordTreeProcedure, connect.NewUnaryHandler(RecordTreeProcedure, srv.RecordTree, options...))
	mux.Handle(RecordRepositionProcedure, connect.NewUnaryHandler(RecordRepositionProcedure, srv.RecordReposition, options...))
	mux.Handle(RecordDuplicateProcedure, connect.NewUnaryHandler(RecordDuplicateProcedure, srv.RecordDuplicate, options...))
	mux.Handle(RecordDeleteProcedure, connect.NewUnaryHandler(RecordDeleteProcedure, srv.RecordDelete, options...))
	mux.Handle(RecordSearchProcedure, connect.NewUnaryHandler(RecordSearchProcedure, srv.RecordSearch, options...))
	mux.Handle(RecordHeadersProcedure, connect.NewUnaryHandler(RecordHeadersProcedure, srv.RecordHeaders, options...))
	mux.Handle(RecordHeaderReorderProcedure, connect.NewUnaryHandler(RecordHeaderReorderProcedure, srv.RecordHeaderReorder, options...))
	return &api.Service{Path: "/" + RecordServiceName + "/", Handler: mux}, nil
}

func (c RecordServiceRPC) RecordCreate(ctx context.Context, req *connect.Request[RecordSaveRequest]) (*connect.Response[RecordSaveResponse], error) {
	return c.save(ctx, req.Msg.Record, c.rs.Create)
}

func (c RecordServiceRPC) RecordUpdate(ctx context.Context, req *connect.Request[RecordSaveRequest]) (*connect.Response[RecordSaveResponse], error) {
	if req.Msg.Record.ID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("record id is required"))
	}
	return c.save(ctx, req.Msg.Record, c.rs.Update)
}

func (c RecordServiceRPC) save(ctx context.Context, dto mrecord.RecordDTO, write func(context.Context, *mrecord.Record) (mresult.Result, error)) (*connect.Response[RecordSaveResponse], error) {
	rec, err := trecord.FromDTO(dto)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	res, err := write(ctx, &rec)
	if err != nil {
		return nil, toConnectError(err)
	}

	resp := &RecordSaveResponse{Result: res}
	if !res.Success {
		c.logger.DebugContext(ctx, "record save rejected", "message", res.Message)
		return connect.NewResponse(resp), nil
	}
	out := trecord.ToDTO(rec)
	resp.Record = &out
	return connect.NewResponse(resp), nil
}

func (c RecordServiceRPC) RecordGet(ctx context.Context, req *connect.Request[RecordGetRequest]) (*connect.Response[RecordGetResponse], error) {
	id, err := idwrap.NewText(req.Msg.RecordID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	rec, err := c.rs.GetByID(ctx, id, req.Msg.IncludeHeaders)
	if err != nil {
		return nil, toConnectError(err)
	}
	if rec == nil {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("record %s not found", id))
	}
	return connect.NewResponse(&RecordGetResponse{Record: trecord.ToDTO(*rec)}), nil
}

func (c RecordServiceRPC) RecordList(ctx context.Context, req *connect.Request[RecordListRequest]) (*connect.Response[RecordListResponse], error) {
	collectionID, err := idwrap.NewText(req.Msg.CollectionID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	records, err := c.rs.ListByCollectionID(ctx, collectionID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&RecordListResponse{Items: trecord.ToDTOs(records)}), nil
}

func (c RecordServiceRPC) RecordTree(ctx context.Context, req *connect.Request[RecordTreeRequest]) (*connect.Response[RecordTreeResponse], error) {
	ids, err := tgeneric.MassConvertErr(req.Msg.CollectionIDs, idwrap.NewText)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	trees, err := c.rs.GetByCollectionIDs(ctx, ids)
	if err != nil {
		return nil, toConnectError(err)
	}

	resp := &RecordTreeResponse{Collections: make(map[string][]mrecord.RecordDTO, len(trees))}
	for collectionID, tree := range trees {
		resp.Collections[collectionID.String()] = trecord.ToDTOs(tree)
	}
	return connect.NewResponse(resp), nil
}

func (c RecordServiceRPC) RecordReposition(ctx context.Context, req *connect.Request[RecordRepositionRequest]) (*connect.Response[mresult.Result], error) {
	msg := req.Msg
	recordID, err := idwrap.NewText(msg.RecordID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	collectionID, err := idwrap.NewText(msg.TargetCollectionID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	folderID, err := idwrap.NewTextOptional(msg.TargetFolderID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if msg.NewSort == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("newSort is required"))
	}

	res, err := c.rs.Reposition(ctx, recordID, folderID, collectionID, *msg.NewSort)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&res), nil
}

func (c RecordServiceRPC) RecordDuplicate(ctx context.Context, req *connect.Request[RecordIDRequest]) (*connect.Response[RecordSaveResponse], error) {
	id, err := idwrap.NewText(req.Msg.RecordID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	dup, res, err := c.rs.Duplicate(ctx, id)
	if err != nil {
		return nil, toConnectError(err)
	}

	resp := &RecordSaveResponse{Result: res}
	if dup != nil {
		out := trecord.ToDTO(*dup)
		resp.Record = &out
	}
	return connect.NewResponse(resp), nil
}

func (c RecordServiceRPC) RecordDelete(ctx context.Context, req *connect.Request[RecordIDRequest]) (*connect.Response[mresult.Result], error) {
	id, err := idwrap.NewText(req.Msg.RecordID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	res, err := c.rs.Delete(ctx, id)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&res), nil
}

func (c RecordServiceRPC) RecordSearch(ctx context.Context, req *connect.Request[RecordSearchRequest]) (*connect.Response[RecordListResponse], error) {
	collectionID, err := idwrap.NewText(req.Msg.CollectionID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	found, err := c.rs.Search(ctx, collectionID, req.Msg.Query)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&RecordListResponse{Items: trecord.ToDTOs(found)}), nil
}

// RecordHeaders returns the active headers of a record as sent on the wire.
func (c RecordServiceRPC) RecordHeaders(ctx context.Context, req *connect.Request[RecordIDRequest]) (*connect.Response[RecordHeadersResponse], error) {
	id, err := idwrap.NewText(req.Msg.RecordID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	rec, err := c.rs.GetByID(ctx, id, true)
	if err != nil {
		return nil, toConnectError(err)
	}
	if rec == nil {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("record %s not found", id))
	}
	return connect.NewResponse(&RecordHeadersResponse{Headers: theader.FormatActive(rec.Headers)}), nil
}

func (c RecordServiceRPC) RecordHeaderReorder(ctx context.Context, req *connect.Request[RecordHeaderReorderRequest]) (*connect.Response[RecordHeaderReorderResponse], error) {
	id, err := idwrap.NewText(req.Msg.RecordID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	headers, err := c.rs.ReorderHeaders(ctx, id, req.Msg.OldIndex, req.Msg.NewIndex)
	if err != nil {
		if errors.Is(err, theader.ErrIndexOutOfRange) {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&RecordHeaderReorderResponse{Headers: tgeneric.MassConvert(headers, theader.ToDTO)}), nil
}

func toConnectError(err error) error {
	var txErr *srecord.TransactionError
	switch {
	case errors.Is(err, srecord.ErrNoRecordFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.As(err, &txErr):
		return connect.NewError(connect.CodeAborted, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
