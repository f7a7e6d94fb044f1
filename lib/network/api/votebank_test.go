package api

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"boscoin.io/votebank/lib/common/keypair"
	"boscoin.io/votebank/lib/transaction/operation"
	"boscoin.io/votebank/lib/votebank"
)

func voteBankURL(address string) string {
	return strings.Replace(testURLPrefix+GetVoteBankHandlerPattern, "{id}", address, -1)
}

func TestGetNodeInfoHandler(t *testing.T) {
	ts, l := prepareAPIServer(votebank.VariantVoterList)
	defer ts.Close()
	defer l.Storage().Close()

	resp, err := request(ts, testURLPrefix, false)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var info NodeInfo
	require.NoError(t, json.Unmarshal(mustReadAll(resp.Body), &info))
	require.Equal(t, string(l.Config().NetworkID), info.NetworkID)
	require.Equal(t, "voter-list", info.Variant)
	require.NotEmpty(t, info.Version["version"])
}

func TestGetVoteBankHandler(t *testing.T) {
	ts, l := prepareAPIServer(votebank.VariantVoterList)
	defer ts.Close()
	defer l.Storage().Close()

	address := keypair.Random().Address()
	voter := keypair.Random()

	_, err := l.Submit(makeTransaction(l, keypair.Random(), operation.MakeTestInitVoteBankAt(address)))
	require.NoError(t, err)
	_, err = l.Submit(makeTransaction(l, voter, operation.MakeTestGiveVote(address, votebank.GM)))
	require.NoError(t, err)

	resp, err := request(ts, voteBankURL(address), false)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/hal+json", resp.Header.Get("Content-Type"))

	recv := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(mustReadAll(resp.Body), &recv))
	require.Equal(t, address, recv["id"])
	require.Equal(t, true, recv["is_open_to_vote"])
	require.Equal(t, float64(1), recv["gm"])
	require.Equal(t, float64(0), recv["gn"])
	require.Equal(t, []interface{}{voter.Address()}, recv["voters"])

	links := recv["_links"].(map[string]interface{})
	require.Equal(t, voteBankURL(address), links["self"].(map[string]interface{})["href"])
}

func TestGetVoteBankHandlerOpenVariant(t *testing.T) {
	ts, l := prepareAPIServer(votebank.VariantOpen)
	defer ts.Close()
	defer l.Storage().Close()

	address := keypair.Random().Address()
	_, err := l.Submit(makeTransaction(l, keypair.Random(), operation.MakeTestInitVoteBankAt(address)))
	require.NoError(t, err)

	resp, err := request(ts, voteBankURL(address), false)
	require.NoError(t, err)
	defer resp.Body.Close()

	recv := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(mustReadAll(resp.Body), &recv))
	require.Equal(t, "open", recv["variant"])
	_, found := recv["voters"]
	require.False(t, found)
}

func TestGetVoteBankHandlerNotFound(t *testing.T) {
	ts, l := prepareAPIServer(votebank.VariantVoterList)
	defer ts.Close()
	defer l.Storage().Close()

	{ // unknown vote bank
		resp, err := request(ts, voteBankURL(keypair.Random().Address()), false)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))
	}

	{ // not an address
		resp, err := request(ts, voteBankURL("showme"), false)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}
}

func TestGetVoteBankHandlerStream(t *testing.T) {
	ts, l := prepareAPIServer(votebank.VariantVoterList)
	defer ts.Close()
	defer l.Storage().Close()

	address := keypair.Random().Address()
	_, err := l.Submit(makeTransaction(l, keypair.Random(), operation.MakeTestInitVoteBankAt(address)))
	require.NoError(t, err)

	resp, err := request(ts, voteBankURL(address), true)
	require.NoError(t, err)
	defer resp.Body.Close()
	reader := bufio.NewReader(resp.Body)

	readLine := func() map[string]interface{} {
		line, err := reader.ReadBytes('\n')
		require.NoError(t, err)
		recv := map[string]interface{}{}
		require.NoError(t, json.Unmarshal(bytes.TrimSpace(line), &recv))
		return recv
	}

	{ // current state first
		recv := readLine()
		require.Equal(t, address, recv["id"])
		require.Equal(t, float64(0), recv["gn"])
	}

	_, err = l.Submit(makeTransaction(l, keypair.Random(), operation.MakeTestGiveVote(address, votebank.GN)))
	require.NoError(t, err)

	{
		recv := readLine()
		require.Equal(t, address, recv["id"])
		require.Equal(t, float64(1), recv["gn"])
	}
}
