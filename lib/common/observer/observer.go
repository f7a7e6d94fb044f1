package observer

import (
	"github.com/GianlucaGuarini/go-observable"
)

var VoteBankObserver = observable.New()
var ReceiptObserver = observable.New()

const (
	EventSaved = "saved"
)

// VoteBankEvent is the event name triggered when the vote bank of
// `address` is committed.
func VoteBankEvent(address string) string {
	return EventSaved + " address-" + address
}

// ReceiptEvent is the event name triggered when the receipt of the
// transaction `hash` is stored.
func ReceiptEvent(hash string) string {
	return EventSaved + " hash-" + hash
}
