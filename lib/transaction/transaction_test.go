package transaction

import (
	"encoding/json"
	"testing"

	"github.com/btcsuite/btcutil/base58"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"boscoin.io/votebank/lib/common"
	"boscoin.io/votebank/lib/common/keypair"
	"boscoin.io/votebank/lib/errors"
	"boscoin.io/votebank/lib/transaction/operation"
	"boscoin.io/votebank/lib/votebank"
)

type TestSuite struct {
	suite.Suite
	conf common.Config
}

func (suite *TestSuite) SetupTest() {
	suite.conf = common.NewTestConfig()
	suite.conf.OpsLimit = 10
}

func (suite *TestSuite) TestLoadTransactionSuite() {
	_, tx := TestMakeTransaction(suite.conf.NetworkID, 1)

	b, err := tx.Serialize()
	require.NoError(suite.T(), err)

	var tx2 Transaction
	require.NoError(suite.T(), json.Unmarshal(b, &tx2))
	require.Equal(suite.T(), tx.H, tx2.H)
	require.Equal(suite.T(), tx.B.MakeHashString(), tx2.B.MakeHashString())
	require.NoError(suite.T(), tx2.IsWellFormed(suite.conf))
}

func (suite *TestSuite) TestIsWellFormedTransactionSuite() {
	_, tx := TestMakeTransaction(suite.conf.NetworkID, 1)

	err := tx.IsWellFormed(suite.conf)
	require.NoError(suite.T(), err)
}

func (suite *TestSuite) TestIsWellFormedVoteOperationsSuite() {
	kp := keypair.Random()
	address := keypair.Random().Address()

	tx := TestMakeTransactionWithKeypair(
		suite.conf.NetworkID,
		kp,
		operation.MakeTestInitVoteBankAt(address),
		operation.MakeTestGiveVote(address, votebank.GM),
		operation.MakeTestCloseVoteBank(address),
	)
	require.NoError(suite.T(), tx.IsWellFormed(suite.conf))
}

func (suite *TestSuite) TestIsWellFormedTransactionWithInvalidSourceAddressSuite() {
	_, tx := TestMakeTransaction(suite.conf.NetworkID, 1)
	tx.B.Source = "invalid-address"

	err := tx.IsWellFormed(suite.conf)
	require.Equal(suite.T(), errors.BadPublicAddress, err)
}

func (suite *TestSuite) TestIsWellFormedTransactionWithInvalidSignatureSuite() {
	_, tx := TestMakeTransaction(suite.conf.NetworkID, 1)
	require.NoError(suite.T(), tx.IsWellFormed(suite.conf))

	newSignature, _ := keypair.Master("find me").Sign(append(suite.conf.NetworkID, []byte(tx.B.MakeHashString())...))
	tx.H.Signature = base58.Encode(newSignature)

	err := tx.IsWellFormed(suite.conf)
	require.Equal(suite.T(), errors.SignatureVerificationFailed, err)
}

func (suite *TestSuite) TestIsWellFormedTransactionWithOtherNetworkSuite() {
	_, tx := TestMakeTransaction([]byte("another-network"), 1)

	err := tx.IsWellFormed(suite.conf)
	require.Equal(suite.T(), errors.SignatureVerificationFailed, err)
}

func (suite *TestSuite) TestIsWellFormedTransactionWithModifiedBodySuite() {
	kp, tx := TestMakeTransaction(suite.conf.NetworkID, 1)
	tx.B.SequenceID++

	err := tx.IsWellFormed(suite.conf)
	require.Equal(suite.T(), errors.InvalidHash, err)

	tx.Sign(kp, suite.conf.NetworkID)
	require.NoError(suite.T(), tx.IsWellFormed(suite.conf))
}

func (suite *TestSuite) TestIsWellFormedTransactionMaxOperationsInTransactionSuite() {
	{ // over OpsLimit
		_, tx := TestMakeTransaction(suite.conf.NetworkID, suite.conf.OpsLimit+1)
		err := tx.IsWellFormed(suite.conf)
		require.Equal(suite.T(), errors.TransactionHasOverMaxOperations, err)
	}

	{ // OpsLimit
		_, tx := TestMakeTransaction(suite.conf.NetworkID, suite.conf.OpsLimit)
		err := tx.IsWellFormed(suite.conf)
		require.NoError(suite.T(), err)
	}

	{ // empty
		kp, tx := TestMakeTransaction(suite.conf.NetworkID, 1)
		tx.B.Operations = nil
		tx.Sign(kp, suite.conf.NetworkID)
		err := tx.IsWellFormed(suite.conf)
		require.Equal(suite.T(), errors.TransactionEmptyOperations, err)
	}
}

func (suite *TestSuite) TestIsWellFormedDuplicatedOperationSuite() {
	address := keypair.Random().Address()

	tx := TestMakeTransactionWithKeypair(
		suite.conf.NetworkID,
		keypair.Random(),
		operation.MakeTestGiveVote(address, votebank.GM),
		operation.MakeTestGiveVote(address, votebank.GM),
	)

	err := tx.IsWellFormed(suite.conf)
	require.Equal(suite.T(), errors.DuplicatedOperation, err)
}

func (suite *TestSuite) TestIsWellFormedInvalidOperationSuite() {
	tx := TestMakeTransactionWithKeypair(
		suite.conf.NetworkID,
		keypair.Random(),
		operation.MakeTestCloseVoteBank("not-an-address"),
	)

	err := tx.IsWellFormed(suite.conf)
	require.True(suite.T(), errors.BadPublicAddress.Is(err))
}

func TestTransaction(t *testing.T) {
	suite.Run(t, new(TestSuite))
}

func TestNewTransactionWithoutOperations(t *testing.T) {
	_, err := NewTransaction(keypair.Random().Address(), 0)
	require.Equal(t, errors.TransactionEmptyOperations, err)
}
