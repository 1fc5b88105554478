package rrecord

import (
	"github.com/the-dev-tools/organizer/pkg/model/mheader"
	"github.com/the-dev-tools/organizer/pkg/model/mrecord"
	"github.com/the-dev-tools/organizer/pkg/model/mresult"
)

const RecordServiceName = "organizer.record.v1.RecordService"

const (
	RecordCreateProcedure     = "/" + RecordServiceName + "/RecordCreate"
	RecordUpdateProcedure     = "/" + RecordServiceName + "/RecordUpdate"
	RecordGetProcedure        = "/" + RecordServiceName + "/RecordGet"
	RecordListProcedure       = "/" + RecordServiceName + "/RecordList"
	RecordTreeProcedure       = "/" + RecordServiceName + "/RecordTree"
	RecordRepositionProcedure = "/" + RecordServiceName + "/RecordReposition"
	RecordDuplicateProcedure  = "/" + RecordServiceName + "/RecordDuplicate"
	RecordDeleteProcedure     = "/" + RecordServiceName + "/RecordDelete"
	RecordSearchProcedure     = "/" + RecordServiceName + "/RecordSearch"
	RecordHeadersProcedure    = "/" + RecordServiceName + "/RecordHeaders"

	RecordHeaderReorderProcedure = "/" + RecordServiceName + "/RecordHeaderReorder"
)

type RecordSaveRequest struct {
	Record mrecord.RecordDTO `json:"record"`
}

type RecordSaveResponse struct {
	mresult.Result
	Record *mrecord.RecordDTO `json:"record,omitempty"`
}

type RecordGetRequest struct {
	RecordID       string `json:"recordId"`
	IncludeHeaders bool   `json:"includeHeaders"`
}

type RecordGetResponse struct {
	Record mrecord.RecordDTO `json:"record"`
}

type RecordListRequest struct {
	CollectionID string `json:"collectionId"`
}

type RecordListResponse struct {
	Items []mrecord.RecordDTO `json:"items"`
}

type RecordTreeRequest struct {
	CollectionIDs []string `json:"collectionIds"`
}

type RecordTreeResponse struct {
	Collections map[string][]mrecord.RecordDTO `json:"collections"`
}

// RecordRepositionRequest moves a record. An empty TargetFolderID means the
// collection root.
type RecordRepositionRequest struct {
	RecordID           string `json:"recordId"`
	TargetFolderID     string `json:"targetFolderId"`
	TargetCollectionID string `json:"targetCollectionId"`
	NewSort            *int64 `json:"newSort"`
}

type RecordIDRequest struct {
	RecordID string `json:"recordId"`
}

type RecordSearchRequest struct {
	CollectionID string `json:"collectionId"`
	Query        string `json:"query"`
}

type RecordHeadersResponse struct {
	Headers map[string]string `json:"headers"`
}

type RecordHeaderReorderRequest struct {
	RecordID string `json:"recordId"`
	OldIndex int    `json:"oldIndex"`
	NewIndex int    `json:"newIndex"`
}

type RecordHeaderReorderResponse struct {
	Headers []mheader.HeaderDTO `json:"headers"`
}
