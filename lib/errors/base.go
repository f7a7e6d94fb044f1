package errors

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/ethereum/go-ethereum/rlp"
)

type Error struct {
	Code    uint                   `json:"code"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data,omitempty" rlp:"-"`
}

func (o *Error) Serialize() (b []byte, err error) {
	b, err = json.Marshal(o)
	return
}

func (o *Error) Error() string {
	b, _ := o.Serialize()
	return string(b)
}

func (o *Error) SetData(k string, v interface{}) *Error {
	if o.Data == nil {
		o.Data = map[string]interface{}{}
	}
	o.Data[k] = v

	return o
}

func (o *Error) Clone() *Error {
	var n Error
	n = *o

	n.Data = map[string]interface{}{}
	for k, v := range o.Data {
		n.Data[k] = v
	}

	return &n
}

// Is reports whether err carries the same code as o, so cloned errors with
// extra data still match their catalogue entry.
func (o *Error) Is(err error) bool {
	e, ok := err.(*Error)
	if !ok || e == nil || o == nil {
		return false
	}
	return e.Code == o.Code
}

func (o *Error) EncodeRLP(w io.Writer) (err error) {
	if o == nil {
		return rlp.Encode(w, []uint{})
	}

	if len(o.Data) > 0 {
		var keys []string
		for k := range o.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var d [][2]interface{}
		for _, k := range keys {
			d = append(d, [2]interface{}{k, o.Data[k]})
		}

		return rlp.Encode(w, struct {
			Code    uint
			Message string
			Data    [][2]interface{}
		}{
			Code:    o.Code,
			Message: o.Message,
			Data:    d,
		})
	}

	return rlp.Encode(w, struct {
		Code    uint
		Message string
	}{
		Code:    o.Code,
		Message: o.Message,
	})
}

func NewError(code uint, message string) *Error {
	return &Error{Code: code, Message: message, Data: map[string]interface{}{}}
}

// New wraps a plain message into an unnumbered `Error`.
func New(message string) *Error {
	return NewError(0, message)
}
