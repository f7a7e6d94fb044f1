package httputils

import (
	"fmt"
	"net/http"

	"boscoin.io/votebank/lib/errors"
)

const ProblemTypePrefix = "https://votebank.boscoin.io/problems/"

// Problem is the RFC7807 error body.
type Problem struct {
	// A URI reference that identifies the problem type.
	Type string `json:"type"`

	// A short, human-readable summary of the problem type.
	Title string `json:"title"`

	// The HTTP status code generated by the origin server.
	Status int `json:"status,omitempty"`

	// A human-readable explanation specific to this occurrence.
	Detail string `json:"detail,omitempty"`

	// A URI reference that identifies the specific occurrence.
	Instance string `json:"instance,omitempty"`

	// The code of the `errors.Error` behind the problem.
	Code uint `json:"code,omitempty"`

	Data map[string]interface{} `json:"data,omitempty"`
}

func NewStatusProblem(status int) Problem {
	return Problem{Type: "about:blank", Title: http.StatusText(status), Status: status}
}

func NewDetailedStatusProblem(status int, detail string) Problem {
	p := NewStatusProblem(status)
	p.Detail = detail
	return p
}

func NewErrorProblem(err error, status int) Problem {
	e, ok := err.(*errors.Error)
	if !ok {
		return NewDetailedStatusProblem(status, err.Error())
	}

	p := Problem{
		Type:   fmt.Sprintf("%s%d", ProblemTypePrefix, e.Code),
		Title:  e.Message,
		Status: status,
		Code:   e.Code,
	}
	if len(e.Data) > 0 {
		p.Data = e.Data
	}

	return p
}

func (p Problem) SetInstance(instance string) Problem {
	p.Instance = instance
	return p
}
