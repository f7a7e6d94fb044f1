package resource

import (
	"strings"

	"github.com/nvellon/hal"

	"boscoin.io/votebank/lib/ledger"
)

type Receipt struct {
	r *ledger.Receipt
}

func NewReceipt(r *ledger.Receipt) *Receipt {
	return &Receipt{r: r}
}

func (r Receipt) GetMap() hal.Entry {
	entry := hal.Entry{
		"hash":            r.r.Hash,
		"source":          r.r.Source,
		"sequence_id":     r.r.SequenceID,
		"status":          r.r.Status,
		"operation_count": r.r.Operations,
		"logs":            r.r.Logs,
		"created":         r.r.Created,
	}
	if r.r.Error != nil {
		entry["error"] = r.r.Error
	}

	return entry
}

func (r Receipt) Resource() *hal.Resource {
	res := hal.NewResource(r, r.LinkSelf())
	res.AddLink("transactions", hal.NewLink(URLTransactions+"{?limit,reverse}", hal.LinkAttr{"templated": true}))
	return res
}

func (r Receipt) LinkSelf() string {
	return strings.Replace(URLTransactionByHash, "{id}", r.r.Hash, -1)
}
