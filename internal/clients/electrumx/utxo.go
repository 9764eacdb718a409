package electrumx

import (
	"cmp"
	"context"
	"slices"

	"github.com/wizhodl/atomicalsir/internal/observability/metrics"
	"github.com/wizhodl/atomicalsir/internal/types"
	"github.com/wizhodl/atomicalsir/internal/utils"
)

// ListUtxosScripthash returns the normalized unspent outputs of scripthash,
// smallest value first. Outputs of equal value keep the upstream order.
func (c *Client) ListUtxosScripthash(ctx context.Context, scripthash string) ([]types.Utxo, *types.Error) {
	unspent, err := c.ListUnspentScripthash(ctx, scripthash)
	if err != nil {
		return nil, err
	}

	return SortUtxos(unspent), nil
}

// ListUnspentForAddress is ListUtxosScripthash for an address of the
// client's network.
func (c *Client) ListUnspentForAddress(ctx context.Context, address string) ([]types.Utxo, *types.Error) {
	scripthash, err := c.scripthashOf(address)
	if err != nil {
		return nil, err
	}

	return c.ListUtxosScripthash(ctx, scripthash)
}

// WaitUntilSpendableUtxo polls the address until it holds an output without
// atomicals worth at least minSatoshis and returns the smallest such output.
// It only returns early on RPC errors or when ctx is done.
func (c *Client) WaitUntilSpendableUtxo(ctx context.Context, address string, minSatoshis uint64) (*types.Utxo, *types.Error) {
	scripthash, err := c.scripthashOf(address)
	if err != nil {
		return nil, err
	}
	logger := c.loggerFor(ctx, MethodListUnspent).With().
		Str("address", address).
		Uint64("minSatoshis", minSatoshis).
		Logger()

	for {
		utxos, err := c.ListUtxosScripthash(ctx, scripthash)
		if err != nil {
			metrics.RecordUtxoPoll(metrics.Error)
			return nil, err
		}

		if utxo := FirstSpendable(utxos, minSatoshis); utxo != nil {
			metrics.RecordUtxoPoll(metrics.Success)
			logger.Info().Str("utxo", utxo.String()).Uint64("value", utxo.Value).Msg("found spendable UTXO")
			return utxo, nil
		}
		metrics.RecordUtxoPoll(metrics.Pending)

		logger.Info().Msg("waiting for UTXO...")

		if sleepErr := utils.Sleep(ctx, c.pollInterval); sleepErr != nil {
			return nil, types.NewError(types.UninitializedStatusCode, types.Canceled, sleepErr)
		}
	}
}

func (c *Client) scripthashOf(address string) (string, *types.Error) {
	addr, err := utils.DecodeAddressForNet(address, c.network)
	if err != nil {
		return "", types.NewError(types.UninitializedStatusCode, types.AddressMismatch, err)
	}

	scripthash, err := utils.AddressToScripthash(addr)
	if err != nil {
		return "", types.NewValidationError(err)
	}

	return scripthash, nil
}

// SortUtxos normalizes unspent and sorts it ascending by value, keeping the
// upstream order among equal values.
func SortUtxos(unspent []types.Unspent) []types.Utxo {
	utxos := make([]types.Utxo, 0, len(unspent))
	for _, u := range unspent {
		utxos = append(utxos, u.ToUtxo())
	}

	slices.SortStableFunc(utxos, func(a, b types.Utxo) int {
		return cmp.Compare(a.Value, b.Value)
	})

	return utxos
}

// FirstSpendable returns the first output of utxos that is spendable for
// minSatoshis, or nil. With sorted input that is the smallest sufficient one.
func FirstSpendable(utxos []types.Utxo, minSatoshis uint64) *types.Utxo {
	for i := range utxos {
		if utxos[i].IsSpendable(minSatoshis) {
			u := utxos[i]
			return &u
		}
	}
	return nil
}
