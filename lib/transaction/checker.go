package transaction

import (
	"github.com/btcsuite/btcutil/base58"

	"boscoin.io/votebank/lib/common"
	"boscoin.io/votebank/lib/common/keypair"
	"boscoin.io/votebank/lib/errors"
)

type Checker struct {
	common.DefaultChecker

	NetworkID   []byte
	Transaction Transaction
	Config      common.Config
}

func CheckSource(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*Checker)
	if _, err = keypair.Parse(checker.Transaction.B.Source); err != nil {
		err = errors.BadPublicAddress
		return
	}

	return
}

func CheckOperationsCount(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*Checker)

	if len(checker.Transaction.B.Operations) < 1 {
		err = errors.TransactionEmptyOperations
		return
	}

	if len(checker.Transaction.B.Operations) > checker.Config.OpsLimit {
		err = errors.TransactionHasOverMaxOperations
		return
	}

	return
}

func CheckOperations(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*Checker)

	var hashes []string
	for _, op := range checker.Transaction.B.Operations {
		if err = op.IsWellFormed(checker.Config); err != nil {
			return
		}

		// the same operation twice in one transaction is rejected
		h := op.MakeHashString()
		if _, found := common.InStringArray(hashes, h); found {
			err = errors.DuplicatedOperation
			return
		}

		hashes = append(hashes, h)
	}

	return
}

func CheckHash(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*Checker)

	if checker.Transaction.H.Hash != checker.Transaction.B.MakeHashString() {
		err = errors.InvalidHash
		return
	}

	return
}

func CheckVerifySignature(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*Checker)

	err = keypair.VerifySignature(
		checker.Transaction.B.Source,
		checker.NetworkID,
		checker.Transaction.H.Hash,
		base58.Decode(checker.Transaction.H.Signature),
	)
	if err != nil {
		err = errors.SignatureVerificationFailed
		return
	}

	return
}
