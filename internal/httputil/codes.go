package httputil

// Machine-readable error codes returned alongside error messages so clients
// can branch without string-matching the human text.
const (
	CodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	CodeInvalidAuthHeader  = "INVALID_AUTH_HEADER"
	CodeMissingAuth        = "MISSING_AUTH"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeInternalError      = "INTERNAL_ERROR"
)
