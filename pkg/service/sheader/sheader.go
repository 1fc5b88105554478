package sheader

import (
	"context"
	"database/sql"

	"github.com/the-dev-tools/organizer/pkg/db/gen"
	"github.com/the-dev-tools/organizer/pkg/idwrap"
	"github.com/the-dev-tools/organizer/pkg/model/mheader"
	"github.com/the-dev-tools/organizer/pkg/translate/tgeneric"
)

type HeaderService struct {
	queries *gen.Queries
}

func SerializeDBToModel(header gen.Header) mheader.Header {
	return mheader.Header{
		ID:       header.ID,
		RecordID: header.RecordID,
		Key:      header.HeaderKey,
		Value:    header.HeaderValue,
		Enabled:  header.Enabled,
		Sort:     header.Sort,
	}
}

func SerializeModelToDB(header mheader.Header) gen.CreateHeaderParams {
	return gen.CreateHeaderParams{
		ID:          header.ID,
		RecordID:    header.RecordID,
		HeaderKey:   header.Key,
		HeaderValue: header.Value,
		Enabled:     header.Enabled,
		Sort:        header.Sort,
	}
}

func New(queries *gen.Queries) HeaderService {
	return HeaderService{queries: queries}
}

func (hs HeaderService) TX(tx *sql.Tx) HeaderService {
	return HeaderService{queries: hs.queries.WithTx(tx)}
}

func (hs HeaderService) Create(ctx context.Context, header mheader.Header) error {
	return hs.queries.CreateHeader(ctx, SerializeModelToDB(header))
}

func (hs HeaderService) CreateBulk(ctx context.Context, headers []mheader.Header) error {
	for _, header := range headers {
		if err := hs.Create(ctx, header); err != nil {
			return err
		}
	}
	return nil
}

// GetByRecordID returns the headers of one record in sort order. A record
// without headers yields an empty slice.
func (hs HeaderService) GetByRecordID(ctx context.Context, recordID idwrap.IDWrap) ([]mheader.Header, error) {
	rows, err := hs.queries.GetHeadersByRecordID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	return tgeneric.MassConvert(rows, SerializeDBToModel), nil
}

// GetByCollectionIDs returns every header owned by a record of the given
// collections, keyed by owning record.
func (hs HeaderService) GetByCollectionIDs(ctx context.Context, collectionIDs []idwrap.IDWrap) (map[idwrap.IDWrap][]mheader.Header, error) {
	rows, err := hs.queries.GetHeadersByCollectionIDs(ctx, collectionIDs)
	if err != nil {
		return nil, err
	}
	byRecord := make(map[idwrap.IDWrap][]mheader.Header)
	for _, row := range rows {
		byRecord[row.RecordID] = append(byRecord[row.RecordID], SerializeDBToModel(row))
	}
	return byRecord, nil
}

func (hs HeaderService) DeleteByRecordID(ctx context.Context, recordID idwrap.IDWrap) (int64, error) {
	return hs.queries.DeleteHeadersByRecordID(ctx, recordID)
}
