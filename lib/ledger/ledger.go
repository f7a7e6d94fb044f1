package ledger

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
	logging "github.com/inconshreveable/log15"
	"golang.org/x/sync/singleflight"

	"boscoin.io/votebank/lib/common"
	"boscoin.io/votebank/lib/common/observer"
	"boscoin.io/votebank/lib/errors"
	"boscoin.io/votebank/lib/metrics"
	"boscoin.io/votebank/lib/storage"
	"boscoin.io/votebank/lib/transaction"
	"boscoin.io/votebank/lib/transaction/operation"
	"boscoin.io/votebank/lib/votebank"
)

// Ledger hosts the vote bank program: it checks and runs signed
// transactions one at a time, each inside its own storage transaction.
type Ledger struct {
	sync.Mutex

	st      *storage.LevelDBBackend
	program *votebank.Program
	config  common.Config
	cache   *lru.Cache
	loads   singleflight.Group
	metrics *metrics.LedgerMetrics
	log     logging.Logger
}

type Option func(*Ledger)

func WithMetrics(m *metrics.LedgerMetrics) Option {
	return func(l *Ledger) {
		l.metrics = m
	}
}

func NewLedger(st *storage.LevelDBBackend, program *votebank.Program, config common.Config, opts ...Option) (*Ledger, error) {
	cache, err := lru.New(config.VoteBankCacheSize)
	if err != nil {
		return nil, err
	}

	l := &Ledger{
		st:      st,
		program: program,
		config:  config,
		cache:   cache,
		metrics: metrics.Ledger,
		log:     log.New("variant", program.Variant()),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

func (l *Ledger) Program() *votebank.Program {
	return l.program
}

func (l *Ledger) Config() common.Config {
	return l.config
}

func (l *Ledger) Storage() *storage.LevelDBBackend {
	return l.st
}

// Submit runs `tx`. A malformed or already known transaction is rejected
// with an error and leaves no receipt; otherwise the receipt tells whether
// every operation was committed or all of them were discarded.
func (l *Ledger) Submit(tx transaction.Transaction) (*Receipt, error) {
	started := time.Now()

	if err := tx.IsWellFormed(l.config); err != nil {
		l.log.Debug("transaction is not well-formed", "hash", tx.H.Hash, "error", err)
		l.metrics.AddTransaction(metrics.StatusRejected)
		return nil, err
	}

	receipt, accounts, err := l.submit(tx)
	if err != nil {
		l.metrics.AddTransaction(metrics.StatusRejected)
		return nil, err
	}

	status := string(receipt.Status)
	l.metrics.AddTransaction(status)
	l.metrics.ObserveSubmit(status, time.Since(started).Seconds())

	if receipt.IsCommitted() {
		l.countOperations(tx)
	}

	for address, account := range accounts {
		observer.VoteBankObserver.Trigger(observer.VoteBankEvent(address), account.Clone())
	}
	observer.ReceiptObserver.Trigger(observer.ReceiptEvent(receipt.Hash), receipt)

	return receipt, nil
}

func (l *Ledger) submit(tx transaction.Transaction) (receipt *Receipt, accounts map[string]*votebank.Account, err error) {
	l.Lock()
	defer l.Unlock()

	var exists bool
	if exists, err = ExistsReceipt(l.st, tx.H.Hash); err != nil {
		return
	} else if exists {
		err = errors.TransactionAlreadyExists
		return
	}

	var ts *storage.LevelDBBackend
	if ts, err = l.st.OpenTransaction(); err != nil {
		return
	}

	receipt = NewReceipt(tx)
	store := votebank.NewLevelDBStore(ts)

	var touched []string
	var opErr error
	for i, op := range tx.B.Operations {
		ctx := votebank.NewContext(tx.B.Source, op.B.TargetVoteBank(), store)
		opErr = Execute(l.program, ctx, op)
		receipt.Logs = append(receipt.Logs, ctx.Logs()...)

		if opErr != nil {
			opErr = operationError(opErr, i, op)
			break
		}

		if _, found := common.InStringArray(touched, ctx.VoteBank); !found {
			touched = append(touched, ctx.VoteBank)
		}
	}

	if opErr != nil {
		if err = ts.Discard(); err != nil {
			return
		}

		// nothing of a failed transaction is committed, its logs neither
		receipt.Status = ReceiptFailed
		receipt.Error = opErr.(*errors.Error)
		receipt.Logs = []string{}
		if err = receipt.Save(l.st); err != nil {
			return
		}

		l.log.Debug("transaction failed", "hash", tx.H.Hash, "error", opErr)
		return
	}

	receipt.Status = ReceiptCommitted
	if err = receipt.Save(ts); err != nil {
		ts.Discard()
		return
	}
	if err = ts.Commit(); err != nil {
		ts.Discard()
		return
	}

	accounts = map[string]*votebank.Account{}
	for _, address := range touched {
		account, lerr := votebank.NewLevelDBStore(l.st).Load(address)
		if lerr != nil {
			l.cache.Remove(address)
			continue
		}
		l.cache.Add(address, account)
		accounts[address] = account
	}

	l.log.Debug("transaction committed", "hash", tx.H.Hash, "operations", len(tx.B.Operations))

	return
}

func operationError(err error, index int, op operation.Operation) error {
	e, ok := err.(*errors.Error)
	if !ok {
		e = errors.New(err.Error())
	}

	return e.Clone().
		SetData("operation-index", index).
		SetData("operation-type", op.H.Type).
		SetData("vote-bank", op.B.TargetVoteBank())
}

func (l *Ledger) countOperations(tx transaction.Transaction) {
	for _, op := range tx.B.Operations {
		switch opb := op.B.(type) {
		case operation.InitVoteBank:
			l.metrics.AddVoteBankCreated()
		case operation.GiveVote:
			l.metrics.AddVote(opb.VoteType.String())
		case operation.CloseVoteBank:
			l.metrics.AddVoteBankClosed()
		}
	}
}

// GetVoteBank returns the committed state of the vote bank at `address`.
// A cache miss loads under the submission lock, so a commit can not slip
// between the load and the cache fill; concurrent misses share one load.
func (l *Ledger) GetVoteBank(address string) (*votebank.Account, error) {
	if v, found := l.cache.Get(address); found {
		return v.(*votebank.Account).Clone(), nil
	}

	v, err, _ := l.loads.Do(address, func() (interface{}, error) {
		l.Lock()
		defer l.Unlock()

		if v, found := l.cache.Get(address); found {
			return v, nil
		}

		account, err := votebank.NewLevelDBStore(l.st).Load(address)
		if err != nil {
			return nil, err
		}
		l.cache.Add(address, account)

		return account, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*votebank.Account).Clone(), nil
}

func (l *Ledger) GetReceipt(hash string) (*Receipt, error) {
	return GetReceipt(l.st, hash)
}

func (l *Ledger) GetReceipts(reverse bool, limit int) ([]*Receipt, error) {
	return GetReceipts(l.st, reverse, limit)
}
