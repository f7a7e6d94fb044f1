package cmd

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"boscoin.io/votebank/lib/common"
	"boscoin.io/votebank/lib/common/keypair"
	"boscoin.io/votebank/lib/errors"
	"boscoin.io/votebank/lib/storage"
	"boscoin.io/votebank/lib/votebank"
)

func TestParseBind(t *testing.T) {
	{ // http
		endpoint, err := parseBind("http://0.0.0.0:12345", "", "")
		require.NoError(t, err)
		require.Equal(t, "3s", endpoint.Query().Get("IdleTimeout"))
	}

	{ // IdleTimeout is kept
		endpoint, err := parseBind("http://0.0.0.0:12345?IdleTimeout=10s", "", "")
		require.NoError(t, err)
		require.Equal(t, "10s", endpoint.Query().Get("IdleTimeout"))
	}

	{ // https without tls files
		_, err := parseBind("https://0.0.0.0:12345", "/showme/findme.crt", "/showme/findme.key")
		require.Error(t, err)
	}

	{ // https with tls files
		dir, err := ioutil.TempDir("", "votebank")
		require.NoError(t, err)
		defer os.RemoveAll(dir)

		cert := filepath.Join(dir, "votebank.crt")
		key := filepath.Join(dir, "votebank.key")
		require.NoError(t, ioutil.WriteFile(cert, []byte("cert"), 0600))
		require.NoError(t, ioutil.WriteFile(key, []byte("key"), 0600))

		endpoint, err := parseBind("https://0.0.0.0:12345", cert, key)
		require.NoError(t, err)
		require.Equal(t, cert, endpoint.Query().Get("TLSCertFile"))
		require.Equal(t, key, endpoint.Query().Get("TLSKeyFile"))
	}

	{ // bad scheme
		_, err := parseBind("ftp://0.0.0.0:12345", "", "")
		require.Error(t, err)
	}
}

func TestParseConfig(t *testing.T) {
	{
		c, _, err := parseConfig("showme", "5", "10-M", "memory", "100", nil)
		require.NoError(t, err)
		require.Equal(t, []byte("showme"), c.NetworkID)
		require.Equal(t, 5, c.OpsLimit)
		require.Equal(t, "10-M", c.RateLimitAPI)
		require.Equal(t, "memory", c.HTTPCacheAdapter)
		require.Equal(t, 100, c.HTTPCachePoolSize)
	}

	{ // rate limit can be disabled
		c, _, err := parseConfig("showme", "5", "", "", "100", nil)
		require.NoError(t, err)
		require.Equal(t, "", c.RateLimitAPI)
	}

	cases := []struct {
		flagName string
		args     [5]string
		redis    []string
	}{
		{"--network-id", [5]string{"", "5", "", "", "100"}, nil},
		{"--operations-limit", [5]string{"showme", "0", "", "", "100"}, nil},
		{"--operations-limit", [5]string{"showme", "findme", "", "", "100"}, nil},
		{"--rate-limit-api", [5]string{"showme", "5", "findme", "", "100"}, nil},
		{"--http-cache-pool-size", [5]string{"showme", "5", "", "memory", "-1"}, nil},
		{"--http-cache-adapter", [5]string{"showme", "5", "", "redis", "100"}, nil},
		{"--http-cache-adapter", [5]string{"showme", "5", "", "findme", "100"}, nil},
	}

	for _, c := range cases {
		_, flagName, err := parseConfig(c.args[0], c.args[1], c.args[2], c.args[3], c.args[4], c.redis)
		require.Error(t, err, "%v", c.args)
		require.Equal(t, c.flagName, flagName, "%v", c.args)
	}

	{ // redis with addresses
		c, _, err := parseConfig("showme", "5", "", "redis", "100", []string{"localhost:6379"})
		require.NoError(t, err)
		require.Equal(t, []string{"localhost:6379"}, c.HTTPCacheRedisAddrs)
	}
}

func TestInspectVoteBank(t *testing.T) {
	st := storage.NewTestStorage()
	defer st.Close()

	address := keypair.Random().Address()
	voter := keypair.Random().Address()

	account := votebank.NewAccount(votebank.VariantVoterList)
	account.GMCount = 1
	account.Voters = append(account.Voters, voter)
	require.NoError(t, votebank.NewLevelDBStore(st).Create(address, account))

	v, err := inspectVoteBank(st, address)
	require.NoError(t, err)
	require.Equal(t, address, v.Address)
	require.Equal(t, uint64(1), v.GMCount)

	{
		var b bytes.Buffer
		require.NoError(t, inspectEncoders["default"](v, &b))
		require.True(t, strings.Contains(b.String(), "Voter#0: "+voter))
	}

	{
		var b bytes.Buffer
		require.NoError(t, inspectEncoders["json"](v, &b))
		require.True(t, strings.Contains(b.String(), `"address":"`+address+`"`))
		require.True(t, strings.Contains(b.String(), `"gm_count":1`))
	}

	{
		var b bytes.Buffer
		require.NoError(t, inspectEncoders["yaml"](v, &b))
		require.True(t, strings.Contains(b.String(), "address: "+address))
	}

	{ // unknown
		_, err := inspectVoteBank(st, keypair.Random().Address())
		require.True(t, errors.VoteBankDoesNotExist.Is(err))
	}

	{ // not an address
		_, err := inspectVoteBank(st, "showme")
		require.Error(t, err)
	}
}

func TestDefaultStorageConfig(t *testing.T) {
	s := defaultStorageConfig()
	require.True(t, strings.HasPrefix(s, "file://"))

	_, err := storage.NewConfigFromString(s)
	require.NoError(t, err)

	require.Equal(t, "", common.GetENVValue("VOTEBANK_SHOWME_FINDME", ""))
}
