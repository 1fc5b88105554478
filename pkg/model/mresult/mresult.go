package mresult

// Message is a fixed identifier the client maps to a localized text.
type Message string

const (
	MessageRecordSaveSuccess        Message = "recordSaveSuccess"
	MessageRecordCreateFailedOnName Message = "recordCreateFailedOnName"
	MessageRecordSortSuccess        Message = "recordSortSuccess"
	MessageRecordDeleteSuccess      Message = "recordDeleteSuccess"
	MessageRecordDuplicateSuccess   Message = "recordDuplicateSuccess"
)

// Result is the structured outcome of a write on the record store.
type Result struct {
	Success bool    `json:"success"`
	Message Message `json:"message"`
}

func Ok(msg Message) Result {
	return Result{Success: true, Message: msg}
}

func Fail(msg Message) Result {
	return Result{Success: false, Message: msg}
}
