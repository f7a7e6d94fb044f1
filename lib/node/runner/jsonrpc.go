package runner

import (
	"net/http"

	"github.com/gorilla/rpc"
	jsonrpc "github.com/gorilla/rpc/json"

	"boscoin.io/votebank/lib/storage"
	"boscoin.io/votebank/lib/votebank"
)

const MaxLimitListOptions int = 10000

type DBEchoArgs string
type DBEchoResult string

type DBHasArgs string
type DBHasResult bool

type DBGetArgs string
type DBGetResult storage.IterItem

type DBGetIteratorArgs struct {
	Prefix  string
	Reverse bool
	Limit   int
}

type DBGetIteratorResult struct {
	Limit int
	Items []storage.IterItem
}

// jsonrpcDBApp exposes the raw records of the storage for debugging.
type jsonrpcDBApp struct {
	st *storage.LevelDBBackend
}

func (j *jsonrpcDBApp) Echo(r *http.Request, args *DBEchoArgs, result *DBEchoResult) error {
	*result = DBEchoResult(string(*args))
	return nil
}

func (j *jsonrpcDBApp) Has(r *http.Request, args *DBHasArgs, result *DBHasResult) error {
	o, err := j.st.Has(string(*args))
	if err != nil {
		return err
	}

	*result = DBHasResult(o)
	return nil
}

func (j *jsonrpcDBApp) Get(r *http.Request, args *DBGetArgs, result *DBGetResult) error {
	o, err := j.st.GetRaw(string(*args))
	if err != nil {
		return err
	}

	*result = DBGetResult{Key: []byte(*args), Value: o}
	return nil
}

func (j *jsonrpcDBApp) GetIterator(r *http.Request, args *DBGetIteratorArgs, result *DBGetIteratorResult) error {
	limit := args.Limit
	if limit < 1 || limit > MaxLimitListOptions {
		limit = MaxLimitListOptions
	}

	it, closeFunc := j.st.GetIterator(args.Prefix, args.Reverse)
	defer closeFunc()

	collected := []storage.IterItem{}
	for len(collected) < limit {
		v, hasNext := it()
		if !hasNext {
			break
		}

		collected = append(collected, v)
	}

	result.Items = collected
	result.Limit = limit

	return nil
}

type VoteBankGetArgs string

// jsonrpcVoteBankApp decodes the stored vote bank record, bypassing the
// ledger cache.
type jsonrpcVoteBankApp struct {
	st *storage.LevelDBBackend
}

func (j *jsonrpcVoteBankApp) Get(r *http.Request, args *VoteBankGetArgs, result *votebank.Account) error {
	account, err := votebank.NewLevelDBStore(j.st).Load(string(*args))
	if err != nil {
		return err
	}

	*result = *account
	return nil
}

type jsonrpcInternalServer struct {
	*rpc.Server
}

func (s *jsonrpcInternalServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set(
		"Access-Control-Allow-Headers",
		"Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization",
	)

	if r.Method == "OPTIONS" {
		return
	}

	s.Server.ServeHTTP(w, r)
}

// NewJSONRPCHandler serves the `DB` and `VoteBank` services over json-rpc.
func NewJSONRPCHandler(st *storage.LevelDBBackend) http.Handler {
	s := &jsonrpcInternalServer{Server: rpc.NewServer()}
	s.RegisterCodec(jsonrpc.NewCodec(), "application/json")
	s.RegisterCodec(jsonrpc.NewCodec(), "application/json;charset=UTF-8")

	s.RegisterService(&jsonrpcDBApp{st: st}, "DB")
	s.RegisterService(&jsonrpcVoteBankApp{st: st}, "VoteBank")

	return s
}
