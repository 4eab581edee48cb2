package chain

import (
	"context"
	"encoding/json"
)

// TxOpts carries the acting account and gas budget for a state-mutating
// contract call. The acting identity is always passed per call; there is
// no process-wide current account.
type TxOpts struct {
	From string `json:"from,omitempty"`
	Gas  uint64 `json:"gas,omitempty"`
}

// Receipt is the decoded result of a mined transaction.
type Receipt struct {
	TxHash      string `json:"txHash"`
	BlockNumber uint64 `json:"blockNumber"`
	Status      bool   `json:"status"`
}

// Gateway is the remote call surface of one deployed contract. Call is a
// read, Send mutates state. The core never inspects contract internals;
// it only invokes methods and maps success or failure.
type Gateway interface {
	Call(ctx context.Context, method string, args ...any) (json.RawMessage, error)
	Send(ctx context.Context, method string, args []any, opts TxOpts) (*Receipt, error)
}
