package response

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)

const (
	codeOK            = 0
	codeInternalError = 500
)

const (
	messageOK            = "Success"
	messageInternalError = "Internal server error"
)
