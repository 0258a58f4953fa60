package payment

import (
	"math/rand"
	"strings"
	"time"
)

const (
	// TxnPrefix prefixes every transaction id issued by the simulator.
	TxnPrefix = "MP"

	txnCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	txnLength  = 8
)

// Simulator stands in for a real payment gateway. It waits out a fixed
// processing delay and issues a transaction id; it never declines.
type Simulator struct {
	delay time.Duration
}

func NewSimulator(delay time.Duration) *Simulator {
	return &Simulator{delay: delay}
}

// Charge blocks for the configured delay and returns a fresh transaction id.
// The delay suspends only the calling request.
func (s *Simulator) Charge(method string) string {
	time.Sleep(s.delay)
	return TransactionID(TxnPrefix)
}

// TransactionID generates a random transaction token: the given prefix
// followed by 8 uppercase-alphanumeric characters.
func TransactionID(prefix string) string {
	var b strings.Builder
	b.Grow(len(prefix) + txnLength)
	b.WriteString(prefix)
	for i := 0; i < txnLength; i++ {
		b.WriteByte(txnCharset[rand.Intn(len(txnCharset))])
	}
	return b.String()
}
