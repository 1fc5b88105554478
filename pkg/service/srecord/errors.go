package srecord

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/the-dev-tools/organizer/pkg/model/mrecord"
	"github.com/the-dev-tools/organizer/pkg/model/mresult"
)

var ErrNoRecordFound = sql.ErrNoRows

// ValidationError rejects a record before anything is written.
type ValidationError struct {
	Message mresult.Message
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid record: %s", e.Message)
}

// TransactionError reports a write that was rolled back as a whole. Nothing
// of the operation is visible afterwards, so the caller may retry it.
type TransactionError struct {
	Op  string
	Err error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

func ValidateRecord(r *mrecord.Record) error {
	if r == nil || r.Name == "" {
		return &ValidationError{Message: mresult.MessageRecordCreateFailedOnName}
	}
	return nil
}

// validationResult turns a validation failure into the failure result handed
// back to the caller. ok is false for any other error.
func validationResult(err error) (mresult.Result, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return mresult.Fail(verr.Message), true
	}
	return mresult.Result{}, false
}
