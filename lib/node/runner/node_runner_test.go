package runner

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"boscoin.io/votebank/lib/common/keypair"
	"boscoin.io/votebank/lib/network"
	"boscoin.io/votebank/lib/network/api"
	"boscoin.io/votebank/lib/transaction"
	"boscoin.io/votebank/lib/transaction/operation"
	"boscoin.io/votebank/lib/votebank"
)

func TestNodeRunnerRoutes(t *testing.T) {
	nr := NewTestNodeRunner(votebank.VariantVoterList)
	defer nr.Ledger().Storage().Close()

	ts := httptest.NewServer(nr.Handler())
	defer ts.Close()

	{ // node info
		resp, err := http.Get(ts.URL + network.UrlPathPrefixAPI)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var info api.NodeInfo
		b, _ := ioutil.ReadAll(resp.Body)
		require.NoError(t, json.Unmarshal(b, &info))
		require.Equal(t, "voter-list", info.Variant)
	}

	address := keypair.Random().Address()
	{ // post transaction
		tx := transaction.TestMakeTransactionWithKeypair(
			nr.Ledger().Config().NetworkID,
			keypair.Random(),
			operation.MakeTestInitVoteBankAt(address),
		)
		body, _ := tx.Serialize()

		resp, err := http.Post(ts.URL+network.UrlPathPrefixAPI+api.PostTransactionPattern, "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	{ // vote bank with cors
		req, _ := http.NewRequest("GET", ts.URL+network.UrlPathPrefixAPI+strings.Replace(api.GetVoteBankHandlerPattern, "{id}", address, -1), nil)
		req.Header.Set("Origin", "http://findme")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	}

	{ // metrics
		resp, err := http.Get(ts.URL + network.UrlPathPrefixMetric)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	{ // jsonrpc is disabled by default
		resp, err := http.Post(ts.URL+network.UrlPathPrefixJSONRPC, "application/json", bytes.NewReader([]byte("{}")))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	}
}

func TestNodeRunnerAccessLog(t *testing.T) {
	var buf bytes.Buffer

	nr := NewTestNodeRunner(votebank.VariantOpen, WithAccessLog(&buf))
	defer nr.Ledger().Storage().Close()

	rec := httptest.NewRecorder()
	nr.Handler().ServeHTTP(rec, httptest.NewRequest("GET", network.UrlPathPrefixAPI, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, buf.String(), "GET "+network.UrlPathPrefixAPI)
}
