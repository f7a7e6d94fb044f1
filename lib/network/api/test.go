package api

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/mux"

	"boscoin.io/votebank/lib/common/keypair"
	"boscoin.io/votebank/lib/ledger"
	"boscoin.io/votebank/lib/transaction"
	"boscoin.io/votebank/lib/transaction/operation"
	"boscoin.io/votebank/lib/version"
	"boscoin.io/votebank/lib/votebank"
)

const testURLPrefix = "/api/v1"

func prepareAPIServer(variant votebank.Variant) (*httptest.Server, *ledger.Ledger) {
	l := ledger.NewTestLedger(variant)

	nodeInfo := NodeInfo{
		NetworkID: string(l.Config().NetworkID),
		Variant:   variant.String(),
		Version:   version.Info(),
	}
	apiHandler := NewNetworkHandlerAPI(l, testURLPrefix, nil, nodeInfo)

	router := mux.NewRouter()
	router.HandleFunc(apiHandler.HandlerURLPattern(NodeInfoHandlerPattern), apiHandler.GetNodeInfoHandler).Methods("GET")
	router.HandleFunc(apiHandler.HandlerURLPattern(GetVoteBankHandlerPattern), apiHandler.GetVoteBankHandler).Methods("GET")
	router.HandleFunc(apiHandler.HandlerURLPattern(GetTransactionsHandlerPattern), apiHandler.GetTransactionsHandler).Methods("GET")
	router.HandleFunc(apiHandler.HandlerURLPattern(PostTransactionPattern), apiHandler.PostTransactionHandler).Methods("POST")
	router.HandleFunc(apiHandler.HandlerURLPattern(GetTransactionByHashHandlerPattern), apiHandler.GetTransactionByHashHandler).Methods("GET")

	return httptest.NewServer(router), l
}

func request(ts *httptest.Server, url string, streaming bool) (*http.Response, error) {
	req, err := http.NewRequest("GET", ts.URL+url, nil)
	if err != nil {
		return nil, err
	}
	if streaming {
		req.Header.Set("Accept", "text/event-stream")
	}

	return ts.Client().Do(req)
}

func post(ts *httptest.Server, url, contentType string, body []byte) (*http.Response, error) {
	req, err := http.NewRequest("POST", ts.URL+url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	return ts.Client().Do(req)
}

func makeTransaction(l *ledger.Ledger, kp *keypair.Full, ops ...operation.Operation) transaction.Transaction {
	return transaction.TestMakeTransactionWithKeypair(l.Config().NetworkID, kp, ops...)
}

func mustReadAll(r io.Reader) []byte {
	var b bytes.Buffer
	if _, err := b.ReadFrom(r); err != nil {
		panic(err)
	}
	return b.Bytes()
}
