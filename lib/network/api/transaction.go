package api

import (
	"encoding/json"
	"io/ioutil"
	"mime"
	"net/http"

	"github.com/gorilla/mux"

	"boscoin.io/votebank/lib/common/observer"
	"boscoin.io/votebank/lib/errors"
	"boscoin.io/votebank/lib/ledger"
	"boscoin.io/votebank/lib/metrics"
	"boscoin.io/votebank/lib/network/api/resource"
	"boscoin.io/votebank/lib/network/httputils"
	"boscoin.io/votebank/lib/transaction"
)

// GetTransactionByHashHandler returns the receipt of a submitted
// transaction. Receipts never change once stored, so they go through the
// response cache.
func (api NetworkHandlerAPI) GetTransactionByHashHandler(w http.ResponseWriter, r *http.Request) {
	if httputils.IsEventStream(r) {
		api.streamReceipt(w, r)
		return
	}

	api.cache.WrapHandlerFunc(api.getTransactionByHash)(w, r)
}

func (api NetworkHandlerAPI) getTransactionByHash(w http.ResponseWriter, r *http.Request) {
	receipt, err := api.ledger.GetReceipt(mux.Vars(r)["id"])
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	httputils.MustWriteJSON(w, http.StatusOK, resource.NewReceipt(receipt))
}

// streamReceipt waits for the receipt when the transaction was not yet
// submitted.
func (api NetworkHandlerAPI) streamReceipt(w http.ResponseWriter, r *http.Request) {
	hash := mux.Vars(r)["id"]

	renderFunc := func(args ...interface{}) ([]byte, error) {
		receipt, ok := args[1].(*ledger.Receipt)
		if !ok {
			return nil, errors.TransactionDoesNotExist
		}
		return json.Marshal(resource.NewReceipt(receipt).Resource())
	}

	es := NewEventStream(w, r, renderFunc, DefaultContentType)
	run := es.Start(observer.ReceiptObserver, "hash-"+hash)
	if receipt, err := api.ledger.GetReceipt(hash); err == nil {
		es.Render(receipt)
	}
	metrics.API.OpenStream(metrics.StreamReceipt)
	defer metrics.API.CloseStream(metrics.StreamReceipt)
	run()
}

func (api NetworkHandlerAPI) GetTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	pq, err := httputils.NewPageQuery(r)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	receipts, err := api.ledger.GetReceipts(pq.Reverse, pq.Limit)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	var rs []resource.APIResource
	for _, receipt := range receipts {
		rs = append(rs, resource.NewReceipt(receipt))
	}

	httputils.MustWriteJSON(w, http.StatusOK, resource.NewResourceList(rs, r.URL.String(), "", ""))
}

// PostTransactionHandler submits a signed transaction. A committed
// transaction answers its receipt; a failed one answers the problem of
// the failing operation.
func (api NetworkHandlerAPI) PostTransactionHandler(w http.ResponseWriter, r *http.Request) {
	if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mediaType != "application/json" {
		httputils.WriteJSONError(w, errors.ContentTypeNotJSON)
		return
	}

	defer r.Body.Close()
	body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, MaxTransactionBodySize))
	if err != nil {
		httputils.WriteJSONError(w, errors.InvalidMessage.Clone().SetData("error", err.Error()))
		return
	}

	var tx transaction.Transaction
	if err := json.Unmarshal(body, &tx); err != nil {
		if e, ok := err.(*errors.Error); ok {
			httputils.WriteJSONError(w, e)
		} else {
			httputils.WriteJSONError(w, errors.InvalidMessage.Clone().SetData("error", err.Error()))
		}
		return
	}

	receipt, err := api.ledger.Submit(tx)
	if err != nil {
		log.Debug("transaction rejected", "hash", tx.H.Hash, "error", err)
		httputils.WriteJSONError(w, err)
		return
	}

	res := resource.NewReceipt(receipt)
	if !receipt.IsCommitted() {
		p := httputils.NewErrorProblem(receipt.Error, httputils.StatusCode(receipt.Error)).SetInstance(res.LinkSelf())
		httputils.MustWriteJSON(w, p.Status, p)
		return
	}

	httputils.MustWriteJSON(w, http.StatusOK, res)
}
