package ledger

import (
	"encoding/json"
	"fmt"
	"time"

	"boscoin.io/votebank/lib/common"
	"boscoin.io/votebank/lib/errors"
	"boscoin.io/votebank/lib/storage"
	"boscoin.io/votebank/lib/transaction"
)

const (
	ReceiptPrefixHash    = "rc-hash-"
	ReceiptPrefixCreated = "rc-created-"
)

type ReceiptStatus string

const (
	ReceiptCommitted ReceiptStatus = "committed"
	ReceiptFailed    ReceiptStatus = "failed"
)

// Receipt is the outcome of a submitted transaction. It is stored for
// failed transactions too, so a hash is never run twice. `Logs` holds the
// program logs of committed operations only; a failed receipt has none.
type Receipt struct {
	Hash       string        `json:"hash"`
	Source     string        `json:"source"`
	SequenceID uint64        `json:"sequence_id"`
	Status     ReceiptStatus `json:"status"`
	Operations int           `json:"operations"`
	Logs       []string      `json:"logs"`
	Error      *errors.Error `json:"error,omitempty"`
	Created    string        `json:"created"`
}

func NewReceipt(tx transaction.Transaction) *Receipt {
	return &Receipt{
		Hash:       tx.H.Hash,
		Source:     tx.B.Source,
		SequenceID: tx.B.SequenceID,
		Operations: len(tx.B.Operations),
		Logs:       []string{},
		Created:    common.FormatISO8601(time.Now().UTC()),
	}
}

func (r *Receipt) IsCommitted() bool {
	return r.Status == ReceiptCommitted
}

func (r *Receipt) String() string {
	encoded, _ := json.MarshalIndent(r, "", "  ")
	return string(encoded)
}

func GetReceiptKey(hash string) string {
	return ReceiptPrefixHash + hash
}

// GetReceiptCreatedKey orders receipts by the time they were stored.
func GetReceiptCreatedKey(created string) string {
	return fmt.Sprintf("%s%s-%s", ReceiptPrefixCreated, created, common.GetUniqueIDFromUUID())
}

func (r *Receipt) Save(st *storage.LevelDBBackend) error {
	return st.News(
		storage.Item{Key: GetReceiptKey(r.Hash), Value: r},
		storage.Item{Key: GetReceiptCreatedKey(r.Created), Value: r.Hash},
	)
}

func GetReceipt(st *storage.LevelDBBackend, hash string) (*Receipt, error) {
	var r Receipt
	if err := st.Get(GetReceiptKey(hash), &r); err != nil {
		if err == errors.StorageRecordDoesNotExist {
			return nil, errors.TransactionDoesNotExist
		}
		return nil, err
	}

	return &r, nil
}

func ExistsReceipt(st *storage.LevelDBBackend, hash string) (bool, error) {
	return st.Has(GetReceiptKey(hash))
}

// GetReceipts returns at most `limit` receipts in the order they were
// stored, newest first when `reverse` is set.
func GetReceipts(st *storage.LevelDBBackend, reverse bool, limit int) ([]*Receipt, error) {
	iterFunc, closeFunc := st.GetIterator(ReceiptPrefixCreated, reverse)
	defer closeFunc()

	receipts := []*Receipt{}
	for limit < 1 || len(receipts) < limit {
		item, hasNext := iterFunc()
		if !hasNext {
			break
		}

		var hash string
		if err := common.DecodeJSONValue(item.Value, &hash); err != nil {
			return nil, err
		}

		r, err := GetReceipt(st, hash)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, r)
	}

	return receipts, nil
}
