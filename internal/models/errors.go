package models

// SearchError is a failure from an external marketplace call. Detail is a
// human-readable message safe to surface to the user.
type SearchError struct {
	Source string
	Detail string
	Cause  error
}

func (e *SearchError) Error() string {
	if e.Cause != nil {
		return e.Detail + ": " + e.Cause.Error()
	}
	return e.Detail
}

func (e *SearchError) Unwrap() error {
	return e.Cause
}

func NewSearchError(source, detail string, cause error) *SearchError {
	return &SearchError{
		Source: source,
		Detail: detail,
		Cause:  cause,
	}
}
