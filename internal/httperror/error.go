// Package httperror provides the error body for API error responses.
package httperror

type Error struct {
	Message string `json:"error" example:"could not detect a date column, rename one column to \"Date\""`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}
