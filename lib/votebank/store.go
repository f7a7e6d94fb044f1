package votebank

import (
	"boscoin.io/votebank/lib/errors"
	"boscoin.io/votebank/lib/storage"
)

const VoteBankPrefixAddress = "vb-address-"

// Store is where the program loads and keeps vote banks. Allocation and
// atomicity belong to the store's owner.
type Store interface {
	Exists(address string) (bool, error)
	Load(address string) (*Account, error)
	Create(address string, account *Account) error
	Save(address string, account *Account) error
}

type LevelDBStore struct {
	st *storage.LevelDBBackend
}

func NewLevelDBStore(st *storage.LevelDBBackend) *LevelDBStore {
	return &LevelDBStore{st: st}
}

func GetVoteBankKey(address string) string {
	return VoteBankPrefixAddress + address
}

func (s *LevelDBStore) Exists(address string) (bool, error) {
	return s.st.Has(GetVoteBankKey(address))
}

func (s *LevelDBStore) Load(address string) (*Account, error) {
	var a Account
	if err := s.st.Get(GetVoteBankKey(address), &a); err != nil {
		if err == errors.StorageRecordDoesNotExist {
			return nil, errors.VoteBankDoesNotExist
		}
		return nil, err
	}

	return &a, nil
}

func (s *LevelDBStore) Create(address string, account *Account) error {
	if err := s.st.New(GetVoteBankKey(address), account); err != nil {
		if err == errors.StorageRecordAlreadyExists {
			return errors.VoteBankAlreadyExists
		}
		return err
	}

	return nil
}

func (s *LevelDBStore) Save(address string, account *Account) error {
	if err := s.st.Set(GetVoteBankKey(address), account); err != nil {
		if err == errors.StorageRecordDoesNotExist {
			return errors.VoteBankDoesNotExist
		}
		return err
	}

	return nil
}

// MemoryStore keeps vote banks in a map.
type MemoryStore struct {
	accounts map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: map[string][]byte{}}
}

func (s *MemoryStore) Exists(address string) (bool, error) {
	_, found := s.accounts[address]
	return found, nil
}

func (s *MemoryStore) Load(address string) (*Account, error) {
	b, found := s.accounts[address]
	if !found {
		return nil, errors.VoteBankDoesNotExist
	}

	var a Account
	if err := a.Deserialize(b); err != nil {
		return nil, err
	}

	return &a, nil
}

func (s *MemoryStore) Create(address string, account *Account) error {
	if _, found := s.accounts[address]; found {
		return errors.VoteBankAlreadyExists
	}

	return s.put(address, account)
}

func (s *MemoryStore) Save(address string, account *Account) error {
	if _, found := s.accounts[address]; !found {
		return errors.VoteBankDoesNotExist
	}

	return s.put(address, account)
}

func (s *MemoryStore) put(address string, account *Account) error {
	b, err := account.Serialize()
	if err != nil {
		return err
	}
	s.accounts[address] = b

	return nil
}
