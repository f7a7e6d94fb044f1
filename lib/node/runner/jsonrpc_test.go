package runner

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	rpcjson "github.com/gorilla/rpc/json"
	"github.com/stretchr/testify/require"

	"boscoin.io/votebank/lib/common"
	"boscoin.io/votebank/lib/common/keypair"
	"boscoin.io/votebank/lib/network"
	"boscoin.io/votebank/lib/transaction"
	"boscoin.io/votebank/lib/transaction/operation"
	"boscoin.io/votebank/lib/votebank"
)

type jsonrpcServerTestHelper struct {
	server *httptest.Server
	nr     *NodeRunner
	t      *testing.T
}

func (jp *jsonrpcServerTestHelper) prepare() {
	jp.nr = NewTestNodeRunner(votebank.VariantVoterList, WithJSONRPC(true))
	jp.server = httptest.NewServer(jp.nr.Handler())
}

func (jp *jsonrpcServerTestHelper) done() {
	jp.server.Close()
	jp.nr.Ledger().Storage().Close()
}

func (jp *jsonrpcServerTestHelper) request(method string, args interface{}) *http.Response {
	message, err := rpcjson.EncodeClientRequest(method, &args)
	require.NoError(jp.t, err)

	req, err := http.NewRequest("POST", jp.server.URL+network.UrlPathPrefixJSONRPC, bytes.NewBuffer(message))
	require.NoError(jp.t, err)

	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(jp.t, err)
	require.Equal(jp.t, 200, resp.StatusCode)

	return resp
}

func (jp *jsonrpcServerTestHelper) initVoteBank() string {
	address := keypair.Random().Address()
	tx := transaction.TestMakeTransactionWithKeypair(
		jp.nr.Ledger().Config().NetworkID,
		keypair.Random(),
		operation.MakeTestInitVoteBankAt(address),
	)
	_, err := jp.nr.Ledger().Submit(tx)
	require.NoError(jp.t, err)

	return address
}

func TestJSONRPCServerEcho(t *testing.T) {
	jp := jsonrpcServerTestHelper{t: t}
	jp.prepare()
	defer jp.done()

	token := common.NowISO8601()

	args := DBEchoArgs(token)
	resp := jp.request("DB.Echo", &args)
	defer resp.Body.Close()

	var result DBEchoResult
	require.NoError(t, rpcjson.DecodeClientResponse(resp.Body, &result))
	require.Equal(t, token, string(result))
}

func TestJSONRPCServerDBHasAndGet(t *testing.T) {
	jp := jsonrpcServerTestHelper{t: t}
	jp.prepare()
	defer jp.done()

	address := jp.initVoteBank()
	key := votebank.GetVoteBankKey(address)

	{
		args := DBHasArgs(key)
		resp := jp.request("DB.Has", &args)
		defer resp.Body.Close()

		var result DBHasResult
		require.NoError(t, rpcjson.DecodeClientResponse(resp.Body, &result))
		require.True(t, bool(result))
	}

	{
		args := DBHasArgs(votebank.GetVoteBankKey(keypair.Random().Address()))
		resp := jp.request("DB.Has", &args)
		defer resp.Body.Close()

		var result DBHasResult
		require.NoError(t, rpcjson.DecodeClientResponse(resp.Body, &result))
		require.False(t, bool(result))
	}

	{
		args := DBGetArgs(key)
		resp := jp.request("DB.Get", &args)
		defer resp.Body.Close()

		var result DBGetResult
		require.NoError(t, rpcjson.DecodeClientResponse(resp.Body, &result))
		require.Equal(t, key, string(result.Key))
		require.NotEmpty(t, result.Value)
	}
}

func TestJSONRPCServerDBGetIterator(t *testing.T) {
	jp := jsonrpcServerTestHelper{t: t}
	jp.prepare()
	defer jp.done()

	for i := 0; i < 3; i++ {
		jp.initVoteBank()
	}

	args := DBGetIteratorArgs{Prefix: votebank.GetVoteBankKey(""), Limit: 2}
	resp := jp.request("DB.GetIterator", &args)
	defer resp.Body.Close()

	var result DBGetIteratorResult
	require.NoError(t, rpcjson.DecodeClientResponse(resp.Body, &result))
	require.Equal(t, 2, result.Limit)
	require.Equal(t, 2, len(result.Items))
}

func TestJSONRPCServerVoteBankGet(t *testing.T) {
	jp := jsonrpcServerTestHelper{t: t}
	jp.prepare()
	defer jp.done()

	address := jp.initVoteBank()

	args := VoteBankGetArgs(address)
	resp := jp.request("VoteBank.Get", &args)
	defer resp.Body.Close()

	var result votebank.Account
	require.NoError(t, rpcjson.DecodeClientResponse(resp.Body, &result))
	require.Equal(t, votebank.VariantVoterList, result.Variant)
	require.True(t, result.IsOpenToVote)
}
