package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"boscoin.io/votebank/lib/common/keypair"
	"boscoin.io/votebank/lib/common/observer"
	"boscoin.io/votebank/lib/errors"
	"boscoin.io/votebank/lib/metrics"
	"boscoin.io/votebank/lib/network/api/resource"
	"boscoin.io/votebank/lib/network/httputils"
	"boscoin.io/votebank/lib/votebank"
)

func (api NetworkHandlerAPI) GetVoteBankHandler(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["id"]
	if _, err := keypair.RawPublicKey(address); err != nil {
		httputils.WriteJSONError(w, errors.BadPublicAddress.Clone().SetData("vote-bank", address))
		return
	}

	account, err := api.ledger.GetVoteBank(address)

	if httputils.IsEventStream(r) {
		renderFunc := func(args ...interface{}) ([]byte, error) {
			a, ok := args[1].(*votebank.Account)
			if !ok {
				return nil, errors.InvalidVoteBankData
			}
			return json.Marshal(resource.NewVoteBank(address, a).Resource())
		}

		es := NewEventStream(w, r, renderFunc, DefaultContentType)
		run := es.Start(observer.VoteBankObserver, "address-"+address)
		if err == nil {
			es.Render(account)
		}
		metrics.API.OpenStream(metrics.StreamVoteBank)
		defer metrics.API.CloseStream(metrics.StreamVoteBank)
		run()
		return
	}

	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	httputils.MustWriteJSON(w, http.StatusOK, resource.NewVoteBank(address, account))
}
