package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const orderSuffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// orderSuffixLength is the number of random base36 characters appended
// to the timestamp part of an order number.
const orderSuffixLength = 9

var randInt = rand.Int

// GenerateOrderNumber builds a human-readable unique order number of the
// form ORD-<epoch millis>-<9 random base36 chars>.
func GenerateOrderNumber() (string, error) {
	suffix := make([]byte, orderSuffixLength)
	max := big.NewInt(int64(len(orderSuffixAlphabet)))
	for i := range suffix {
		n, err := randInt(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate order number: %w", err)
		}
		suffix[i] = orderSuffixAlphabet[n.Int64()]
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix), nil
}
