package pollardrho

import (
	"math/big"

	"github.com/mossbach/gofactor/montgomery"
)

func newTestForm(n uint64) *montgomery.Form64 {
	return montgomery.NewForm64(n, montgomery.Full)
}

func mustBig(s string) *big.Int {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad literal: " + s)
	}
	return z
}
