package electrumx

import (
	"context"
	"net/http"
	"time"

	"github.com/wizhodl/atomicalsir/internal/types"
)

type ElectrumXClientInterface interface {
	GetBaseURLs() []string
	GetDefaultRequestTimeout() time.Duration
	GetHttpClient() *http.Client
	GetByTicker(ctx context.Context, ticker string) (*types.Ticker, *types.Error)
	GetFtInfo(ctx context.Context, atomicalID string) (*types.ResponseResult[types.Ft], *types.Error)
	ListUnspentScripthash(ctx context.Context, scripthash string) ([]types.Unspent, *types.Error)
	ListUnspentForAddress(ctx context.Context, address string) ([]types.Utxo, *types.Error)
	/*
		WaitUntilSpendableUtxo blocks until the address holds an output without
		atomicals worth at least minSatoshis. It has no deadline of its own,
		cancel ctx to stop it.
	*/
	WaitUntilSpendableUtxo(ctx context.Context, address string, minSatoshis uint64) (*types.Utxo, *types.Error)
	Broadcast(ctx context.Context, rawTxHex string) (string, *types.Error)
}

var _ ElectrumXClientInterface = (*Client)(nil)
