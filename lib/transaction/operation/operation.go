package operation

import (
	"encoding/json"
	"reflect"

	"github.com/btcsuite/btcutil/base58"

	"boscoin.io/votebank/lib/common"
	"boscoin.io/votebank/lib/errors"
)

type OperationType string

const (
	TypeInitVoteBank  OperationType = "init-vote-bank"
	TypeGiveVote      OperationType = "give-vote"
	TypeCloseVoteBank OperationType = "close-vote-bank"
)

type Operation struct {
	H Header
	B Body
}

func NewOperation(opb Body) (op Operation, err error) {
	var t OperationType
	switch opb.(type) {
	case InitVoteBank:
		t = TypeInitVoteBank
	case GiveVote:
		t = TypeGiveVote
	case CloseVoteBank:
		t = TypeCloseVoteBank
	default:
		err = errors.UnknownOperationType
		return
	}

	op = Operation{
		H: Header{Type: t},
		B: opb,
	}

	return
}

type Header struct {
	Type OperationType `json:"type"`
}

type Body interface {
	//
	// Check that this operation is self consistent
	//
	// Returns:
	//   An `error` if the operation is invalid, `nil` otherwise
	//
	IsWellFormed(common.Config) error

	// The vote bank the operation touches
	TargetVoteBank() string
}

func (o Operation) IsWellFormed(conf common.Config) (err error) {
	if o.B == nil {
		return errors.OperationBodyInsufficient
	}

	return o.B.IsWellFormed(conf)
}

func (o Operation) MakeHash() []byte {
	return common.MustMakeObjectHash(o)
}

func (o Operation) MakeHashString() string {
	return base58.Encode(o.MakeHash())
}

func (o Operation) String() string {
	encoded, _ := json.MarshalIndent(o, "", "  ")

	return string(encoded)
}

type envelop struct {
	H Header
	B interface{}
}

func (o *Operation) UnmarshalJSON(b []byte) (err error) {
	var raw json.RawMessage
	oj := envelop{
		B: &raw,
	}
	if err = json.Unmarshal(b, &oj); err != nil {
		return
	}

	o.H = oj.H

	var body Body
	if body, err = UnmarshalBodyJSON(oj.H.Type, raw); err != nil {
		return
	}
	o.B = body
	return nil
}

func UnmarshalBodyJSON(t OperationType, b []byte) (Body, error) {
	if bi, err := newBodyFromType(t); err != nil {
		return nil, err
	} else if len(b) < 1 {
		return nil, errors.OperationBodyInsufficient
	} else if err = json.Unmarshal(b, bi); err != nil {
		if e, ok := err.(*errors.Error); ok {
			return nil, e
		}
		return nil, errors.InvalidOperation.Clone().SetData("error", err.Error())
	} else {
		// No other way to go from interface-to-pointer to interface-to-value
		// because values within interfaces are not addressable
		return reflect.ValueOf(bi).Elem().Interface().(Body), nil
	}
}

// Returns: A pointer to a body with a type matching `ty`
func newBodyFromType(ty OperationType) (interface{}, error) {
	switch ty {
	case TypeInitVoteBank:
		return &InitVoteBank{}, nil
	case TypeGiveVote:
		return &GiveVote{}, nil
	case TypeCloseVoteBank:
		return &CloseVoteBank{}, nil
	default:
		return nil, errors.UnknownOperationType.Clone().SetData("type", ty)
	}
}
