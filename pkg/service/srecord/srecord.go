package srecord

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	devtoolsdb "github.com/the-dev-tools/organizer/pkg/db"
	"github.com/the-dev-tools/organizer/pkg/db/gen"
	"github.com/the-dev-tools/organizer/pkg/dbtime"
	"github.com/the-dev-tools/organizer/pkg/fuzzyfinder"
	"github.com/the-dev-tools/organizer/pkg/idwrap"
	"github.com/the-dev-tools/organizer/pkg/model/mheader"
	"github.com/the-dev-tools/organizer/pkg/model/mrecord"
	"github.com/the-dev-tools/organizer/pkg/model/mresult"
	"github.com/the-dev-tools/organizer/pkg/service/sheader"
	"github.com/the-dev-tools/organizer/pkg/sort/sortenabled"
	"github.com/the-dev-tools/organizer/pkg/sortalloc"
	"github.com/the-dev-tools/organizer/pkg/translate/tgeneric"
	"github.com/the-dev-tools/organizer/pkg/translate/theader"
	"github.com/the-dev-tools/organizer/pkg/translate/trecord"
	"github.com/the-dev-tools/organizer/pkg/translate/trecordnest"
)

type RecordService struct {
	DB      *sql.DB
	queries *gen.Queries
	headers sheader.HeaderService
	sorts   *sortalloc.Allocator
	logger  *slog.Logger

	// held from sort allocation or sibling shift until commit, so writes that
	// place records never interleave inside the process
	writeMu sync.Mutex
}

func New(db *sql.DB, queries *gen.Queries, sorts *sortalloc.Allocator, logger *slog.Logger) *RecordService {
	return &RecordService{
		DB:      db,
		queries: queries,
		headers: sheader.New(queries),
		sorts:   sorts,
		logger:  logger,
	}
}

// NewSortAllocator returns an allocator that reads the stored max sort
// through queries.
func NewSortAllocator(queries *gen.Queries) *sortalloc.Allocator {
	return sortalloc.New(sortalloc.MaxSortReaderFunc(func(ctx context.Context) (int64, bool, error) {
		max, err := queries.GetMaxSort(ctx)
		if err != nil {
			return 0, false, err
		}
		return max.Int64, max.Valid, nil
	}))
}

func SerializeDBToModel(rec gen.Record) mrecord.Record {
	return mrecord.Record{
		ID:           rec.ID,
		CollectionID: rec.CollectionID,
		ParentID:     rec.ParentID,
		Name:         rec.Name,
		Url:          rec.Url,
		Method:       rec.Method,
		Body:         rec.Body,
		Test:         rec.Test,
		Category:     mrecord.Category(rec.Category),
		Sort:         rec.Sort,
		Created:      dbtime.FromUnixMilli(rec.Created),
	}
}

func SerializeModelToDB(rec mrecord.Record) gen.UpsertRecordParams {
	return gen.UpsertRecordParams{
		ID:           rec.ID,
		CollectionID: rec.CollectionID,
		ParentID:     rec.ParentID,
		Name:         rec.Name,
		Url:          rec.Url,
		Method:       rec.Method,
		Body:         rec.Body,
		Test:         rec.Test,
		Category:     int8(rec.Category),
		Sort:         rec.Sort,
		Created:      rec.Created.UnixMilli(),
	}
}

// Create stores a new record with its headers under a freshly allocated
// sort. A record without a name gets a failure result and nothing is
// written, not even a sort allocation.
func (rs *RecordService) Create(ctx context.Context, rec *mrecord.Record) (mresult.Result, error) {
	if err := ValidateRecord(rec); err != nil {
		res, _ := validationResult(err)
		rs.logger.DebugContext(ctx, "record rejected", "reason", res.Message)
		return res, nil
	}

	rs.writeMu.Lock()
	defer rs.writeMu.Unlock()

	sort, err := rs.sorts.NextSort(ctx)
	if err != nil {
		return mresult.Result{}, err
	}
	rec.Sort = sort
	if rec.ID.IsZero() {
		rec.ID = idwrap.NewNow()
	}
	if rec.Created.IsZero() {
		rec.Created = dbtime.DBNow()
	}
	linkHeaders(rec)

	err = devtoolsdb.WithTx(ctx, rs.DB, func(tx *sql.Tx) error {
		if err := rs.queries.WithTx(tx).CreateRecord(ctx, gen.CreateRecordParams(SerializeModelToDB(*rec))); err != nil {
			return err
		}
		return rs.headers.TX(tx).CreateBulk(ctx, rec.Headers)
	})
	if err != nil {
		return mresult.Result{}, &TransactionError{Op: "create record", Err: err}
	}

	rs.logger.DebugContext(ctx, "record created",
		"id", rec.ID.String(),
		"sort", rec.Sort,
		"active_headers", sortenabled.CountEnabled(rec.Headers),
	)
	return mresult.Ok(mresult.MessageRecordSaveSuccess), nil
}

// Update saves rec over the stored record with the same id, or creates it.
// Headers are replaced as a whole set. A zero Sort keeps the stored one. A
// record that is not stored yet always gets an allocated sort; a Sort set by
// the caller is ignored for it.
func (rs *RecordService) Update(ctx context.Context, rec *mrecord.Record) (mresult.Result, error) {
	if err := ValidateRecord(rec); err != nil {
		res, _ := validationResult(err)
		return res, nil
	}

	rs.writeMu.Lock()
	defer rs.writeMu.Unlock()

	existing, err := rs.queries.GetRecord(ctx, rec.ID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if rec.Sort, err = rs.sorts.NextSort(ctx); err != nil {
			return mresult.Result{}, err
		}
	case err != nil:
		return mresult.Result{}, err
	case rec.Sort == 0:
		rec.Sort = existing.Sort
	}
	if rec.Created.IsZero() {
		rec.Created = dbtime.DBNow()
	}
	linkHeaders(rec)

	err = devtoolsdb.WithTx(ctx, rs.DB, func(tx *sql.Tx) error {
		if _, err := rs.headers.TX(tx).DeleteByRecordID(ctx, rec.ID); err != nil {
			return err
		}
		if err := rs.queries.WithTx(tx).UpsertRecord(ctx, SerializeModelToDB(*rec)); err != nil {
			return err
		}
		return rs.headers.TX(tx).CreateBulk(ctx, rec.Headers)
	})
	if err != nil {
		return mresult.Result{}, &TransactionError{Op: "update record", Err: err}
	}

	rs.logger.DebugContext(ctx, "record updated", "id", rec.ID.String(), "headers", len(rec.Headers))
	return mresult.Ok(mresult.MessageRecordSaveSuccess), nil
}

// GetByID returns nil without error when no record has id.
func (rs *RecordService) GetByID(ctx context.Context, id idwrap.IDWrap, includeHeaders bool) (*mrecord.Record, error) {
	row, err := rs.queries.GetRecord(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	rec := SerializeDBToModel(row)
	if includeHeaders {
		rec.Headers, err = rs.headers.GetByRecordID(ctx, id)
		if err != nil {
			return nil, err
		}
	}
	return &rec, nil
}

// ListByCollectionID returns the flat record list of a collection in sort
// order, without headers.
func (rs *RecordService) ListByCollectionID(ctx context.Context, collectionID idwrap.IDWrap) ([]mrecord.Record, error) {
	rows, err := rs.queries.GetRecordsByCollectionID(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	return tgeneric.MassConvert(rows, SerializeDBToModel), nil
}

// GetByCollectionIDs loads every record of the given collections with headers
// and returns one tree per collection. Collections with no records have no
// entry.
func (rs *RecordService) GetByCollectionIDs(ctx context.Context, collectionIDs []idwrap.IDWrap) (map[idwrap.IDWrap][]mrecord.Record, error) {
	if len(collectionIDs) == 0 {
		return map[idwrap.IDWrap][]mrecord.Record{}, nil
	}

	rows, err := rs.queries.GetRecordsByCollectionIDs(ctx, collectionIDs)
	if err != nil {
		return nil, err
	}
	headers, err := rs.headers.GetByCollectionIDs(ctx, collectionIDs)
	if err != nil {
		return nil, err
	}

	records := make([]mrecord.Record, len(rows))
	for i, row := range rows {
		records[i] = SerializeDBToModel(row)
		records[i].Headers = headers[row.ID]
	}
	return trecordnest.GroupByCollection(records), nil
}

// Reposition moves a record to position newSort under folderID (nil for the
// collection root) of collectionID. Siblings at or after newSort move one
// down first. Both steps commit together or not at all.
func (rs *RecordService) Reposition(ctx context.Context, recordID idwrap.IDWrap, folderID *idwrap.IDWrap, collectionID idwrap.IDWrap, newSort int64) (mresult.Result, error) {
	rs.writeMu.Lock()
	defer rs.writeMu.Unlock()

	tx, err := rs.DB.BeginTx(ctx, nil)
	if err != nil {
		return mresult.Result{}, &TransactionError{Op: "reposition record", Err: err}
	}
	defer devtoolsdb.TxnRollback(tx)

	qtx := rs.queries.WithTx(tx)
	err = qtx.ShiftSiblingSorts(ctx, gen.ShiftSiblingSortsParams{
		CollectionID: collectionID,
		ParentID:     folderID,
		Sort:         newSort,
	})
	if err != nil {
		return mresult.Result{}, &TransactionError{Op: "reposition record", Err: fmt.Errorf("shift siblings: %w", err)}
	}

	moved, err := qtx.MoveRecord(ctx, gen.MoveRecordParams{
		ParentID:     folderID,
		CollectionID: collectionID,
		Sort:         newSort,
		ID:           recordID,
	})
	if err != nil {
		return mresult.Result{}, &TransactionError{Op: "reposition record", Err: fmt.Errorf("move record: %w", err)}
	}
	if moved == 0 {
		return mresult.Result{}, &TransactionError{Op: "reposition record", Err: ErrNoRecordFound}
	}

	if err := tx.Commit(); err != nil {
		return mresult.Result{}, &TransactionError{Op: "reposition record", Err: err}
	}

	rs.logger.DebugContext(ctx, "record repositioned",
		"id", recordID.String(),
		"folder", idwrap.OptionalString(folderID),
		"sort", newSort,
	)
	return mresult.Ok(mresult.MessageRecordSortSuccess), nil
}

// ReorderHeaders moves the header at oldIndex of a record's sorted header
// list to newIndex and stores the renumbered list.
func (rs *RecordService) ReorderHeaders(ctx context.Context, recordID idwrap.IDWrap, oldIndex, newIndex int) ([]mheader.Header, error) {
	rs.writeMu.Lock()
	defer rs.writeMu.Unlock()

	if _, err := rs.queries.GetRecord(ctx, recordID); err != nil {
		return nil, err
	}
	current, err := rs.headers.GetByRecordID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	reordered, err := theader.Reorder(current, oldIndex, newIndex)
	if err != nil {
		return nil, err
	}

	err = devtoolsdb.WithTx(ctx, rs.DB, func(tx *sql.Tx) error {
		if _, err := rs.headers.TX(tx).DeleteByRecordID(ctx, recordID); err != nil {
			return err
		}
		return rs.headers.TX(tx).CreateBulk(ctx, reordered)
	})
	if err != nil {
		return nil, &TransactionError{Op: "reorder headers", Err: err}
	}
	return reordered, nil
}

// Delete removes a record and its headers. Children are left in place.
func (rs *RecordService) Delete(ctx context.Context, id idwrap.IDWrap) (mresult.Result, error) {
	err := devtoolsdb.WithTx(ctx, rs.DB, func(tx *sql.Tx) error {
		if _, err := rs.headers.TX(tx).DeleteByRecordID(ctx, id); err != nil {
			return err
		}
		deleted, err := rs.queries.WithTx(tx).DeleteRecord(ctx, id)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return ErrNoRecordFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNoRecordFound) {
			return mresult.Result{}, ErrNoRecordFound
		}
		return mresult.Result{}, &TransactionError{Op: "delete record", Err: err}
	}
	return mresult.Ok(mresult.MessageRecordDeleteSuccess), nil
}

// Duplicate stores a clone of the record with its headers. The clone is a
// sibling of the source and is placed after every existing record.
func (rs *RecordService) Duplicate(ctx context.Context, id idwrap.IDWrap) (*mrecord.Record, mresult.Result, error) {
	src, err := rs.GetByID(ctx, id, true)
	if err != nil {
		return nil, mresult.Result{}, err
	}
	if src == nil {
		return nil, mresult.Result{}, ErrNoRecordFound
	}

	clone := trecord.Clone(*src)
	res, err := rs.Create(ctx, &clone)
	if err != nil || !res.Success {
		return nil, res, err
	}
	return &clone, mresult.Ok(mresult.MessageRecordDuplicateSuccess), nil
}

// Search ranks the records of a collection by how closely their name matches
// term, ignoring case. Records that do not match are left out.
func (rs *RecordService) Search(ctx context.Context, collectionID idwrap.IDWrap, term string) ([]mrecord.Record, error) {
	records, err := rs.ListByCollectionID(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	names := tgeneric.MassConvert(records, func(r mrecord.Record) string { return r.Name })
	ranks := fuzzyfinder.RankFindFold(names, term)

	found := make([]mrecord.Record, len(ranks))
	for i, rank := range ranks {
		found[i] = records[rank.OriginalIndex]
	}
	return found, nil
}

func linkHeaders(rec *mrecord.Record) {
	for i := range rec.Headers {
		rec.Headers[i].RecordID = rec.ID
		if rec.Headers[i].ID.IsZero() {
			rec.Headers[i].ID = idwrap.NewNow()
		}
	}
}
