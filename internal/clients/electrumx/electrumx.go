package electrumx

import (
	"context"
	"errors"

	"github.com/wizhodl/atomicalsir/internal/types"
	"github.com/wizhodl/atomicalsir/internal/utils"
)

const (
	MethodGetByTicker = "blockchain.atomicals.get_by_ticker"
	MethodGetFtInfo   = "blockchain.atomicals.get_ft_info"
	MethodListUnspent = "blockchain.scripthash.listunspent"
	MethodBroadcast   = "blockchain.transaction.broadcast"
)

// GetByTicker resolves a ticker name to its realm status and atomical id.
func (c *Client) GetByTicker(ctx context.Context, ticker string) (*types.Ticker, *types.Error) {
	resp, err := Call[types.Response[types.ResponseResult[types.Ticker]]](
		ctx, c, MethodGetByTicker, ticker,
	)
	if err != nil {
		return nil, err
	}

	return &resp.Response.Result, nil
}

// GetFtInfo fetches the fungible token metadata of atomicalID.
func (c *Client) GetFtInfo(ctx context.Context, atomicalID string) (*types.ResponseResult[types.Ft], *types.Error) {
	resp, err := Call[types.Response[types.ResponseResult[types.Ft]]](
		ctx, c, MethodGetFtInfo, atomicalID,
	)
	if err != nil {
		return nil, err
	}

	return &resp.Response, nil
}

// ListUnspentScripthash returns the unspent outputs of scripthash exactly as
// the proxy reports them.
func (c *Client) ListUnspentScripthash(ctx context.Context, scripthash string) ([]types.Unspent, *types.Error) {
	resp, err := Call[types.Response[[]types.Unspent]](
		ctx, c, MethodListUnspent, scripthash,
	)
	if err != nil {
		return nil, err
	}

	return resp.Response, nil
}

// Broadcast submits a raw transaction and returns its txid.
func (c *Client) Broadcast(ctx context.Context, rawTxHex string) (string, *types.Error) {
	if !utils.IsValidTxHex(rawTxHex) {
		return "", types.NewValidationError(errors.New("raw transaction is not a valid serialized transaction"))
	}

	resp, err := Call[types.Response[string]](
		ctx, c, MethodBroadcast, rawTxHex,
	)
	if err != nil {
		return "", err
	}

	return resp.Response, nil
}
