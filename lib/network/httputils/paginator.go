package httputils

import (
	"net/http"
	"strconv"

	"boscoin.io/votebank/lib/errors"
)

const (
	DefaultLimit    int = 20
	DefaultMaxLimit int = 100
)

// PageQuery is the `limit` and `reverse` query of list endpoints.
type PageQuery struct {
	Limit   int
	Reverse bool
}

func NewPageQuery(r *http.Request) (PageQuery, error) {
	q := PageQuery{Limit: DefaultLimit}
	query := r.URL.Query()

	if s := query.Get("limit"); len(s) > 0 {
		limit, err := strconv.Atoi(s)
		if err != nil || limit < 1 {
			return q, errors.BadRequestParameter.Clone().SetData("limit", s)
		}
		if limit > DefaultMaxLimit {
			limit = DefaultMaxLimit
		}
		q.Limit = limit
	}

	if s := query.Get("reverse"); len(s) > 0 {
		reverse, err := strconv.ParseBool(s)
		if err != nil {
			return q, errors.BadRequestParameter.Clone().SetData("reverse", s)
		}
		q.Reverse = reverse
	}

	return q, nil
}
