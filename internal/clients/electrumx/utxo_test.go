package electrumx

import (
	"context"
	"math/rand"
	"net/http"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wizhodl/atomicalsir/internal/types"
)

func TestListUnspentForAddressSortsAscending(t *testing.T) {
	a := newUpstream(t, always(http.StatusOK, listUnspentEnvelope(t,
		unspentEntry(txid(0x01), 0, 2000),
		unspentEntry(txid(0x02), 1, 500),
		unspentEntry(txid(0x03), 2, 1500),
	)))
	c := newTestClient(t, []string{a.URL}, 0, 0)

	utxos, err := c.ListUnspentForAddress(context.Background(), testAddress(t, &chaincfg.MainNetParams))
	require.Nil(t, err)

	require.Len(t, utxos, 3)
	assert.Equal(t, uint64(500), utxos[0].Value)
	assert.Equal(t, uint64(1500), utxos[1].Value)
	assert.Equal(t, uint64(2000), utxos[2].Value)
	assert.Equal(t, txid(0x02), utxos[0].Txid)
	assert.Equal(t, uint32(1), utxos[0].Vout)
	assert.Equal(t, []any{expectedScripthash()}, a.LastParams())
}

func TestWaitUntilSpendableUtxoReturnsSmallestSufficient(t *testing.T) {
	a := newUpstream(t, always(http.StatusOK, listUnspentEnvelope(t,
		unspentEntry(txid(0x01), 0, 2000),
		unspentEntry(txid(0x02), 1, 500),
		unspentEntry(txid(0x03), 2, 1500),
	)))
	c := newTestClient(t, []string{a.URL}, 0, 0)

	utxo, err := c.WaitUntilSpendableUtxo(context.Background(), testAddress(t, &chaincfg.MainNetParams), 1000)
	require.Nil(t, err)

	assert.Equal(t, uint64(1500), utxo.Value)
	assert.Equal(t, txid(0x03), utxo.Txid)
	assert.Equal(t, 1, a.Calls())
	assert.Contains(t, c.logs.String(), "found spendable UTXO")
}

func TestWaitUntilSpendableUtxoSkipsOutputsWithAtomicals(t *testing.T) {
	a := newUpstream(t, always(http.StatusOK, listUnspentEnvelope(t,
		unspentEntry(txid(0x01), 0, 5000, "atomical-id-i0"),
		unspentEntry(txid(0x02), 0, 1200),
	)))
	c := newTestClient(t, []string{a.URL}, 0, 0)

	utxo, err := c.WaitUntilSpendableUtxo(context.Background(), testAddress(t, &chaincfg.MainNetParams), 1000)
	require.Nil(t, err)

	assert.Equal(t, uint64(1200), utxo.Value)
	assert.Empty(t, utxo.Atomicals)
}

func TestWaitUntilSpendableUtxoPollsUntilOutputAppears(t *testing.T) {
	a := newUpstream(t, func(call int64, _ string) (int, string) {
		if call < 3 {
			return http.StatusOK, listUnspentEnvelope(t, unspentEntry(txid(0x01), 0, 100))
		}
		return http.StatusOK, listUnspentEnvelope(t,
			unspentEntry(txid(0x01), 0, 100),
			unspentEntry(txid(0x02), 0, 10000),
		)
	})
	c := newTestClient(t, []string{a.URL}, 0, 0)

	utxo, err := c.WaitUntilSpendableUtxo(context.Background(), testAddress(t, &chaincfg.MainNetParams), 546)
	require.Nil(t, err)

	assert.Equal(t, txid(0x02), utxo.Txid)
	assert.Equal(t, 3, a.Calls())
	assert.Contains(t, c.logs.String(), "waiting for UTXO...")
}

func TestWaitUntilSpendableUtxoAddressMismatch(t *testing.T) {
	a := newUpstream(t, always(http.StatusOK, listUnspentEnvelope(t)))
	c := newTestClient(t, []string{a.URL}, 0, 0)

	for _, address := range []string{
		testAddress(t, &chaincfg.TestNet3Params),
		"not-an-address",
	} {
		_, err := c.WaitUntilSpendableUtxo(context.Background(), address, 1)
		require.NotNil(t, err, address)
		assert.Equal(t, types.AddressMismatch, err.ErrorCode, address)
	}
	assert.Equal(t, 0, a.Calls())
}

func TestWaitUntilSpendableUtxoStopsOnCancel(t *testing.T) {
	a := newUpstream(t, always(http.StatusOK, listUnspentEnvelope(t)))
	c := newTestClient(t, []string{a.URL}, 0, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := c.WaitUntilSpendableUtxo(ctx, testAddress(t, &chaincfg.MainNetParams), 1)
	require.NotNil(t, err)
	assert.Equal(t, types.Canceled, err.ErrorCode)

	// counted on the client side, a request already in flight may still
	// reach the server after the wait returned
	sentAtCancel := c.transport.Total()
	assert.Positive(t, sentAtCancel)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, sentAtCancel, c.transport.Total(), "no polling after cancellation")
}

func TestWaitUntilSpendableUtxoSurfacesRPCErrors(t *testing.T) {
	a := newUpstream(t, always(http.StatusInternalServerError, "down"))
	c := newTestClient(t, []string{a.URL}, 1, 0)

	_, err := c.WaitUntilSpendableUtxo(context.Background(), testAddress(t, &chaincfg.MainNetParams), 1)
	require.NotNil(t, err)

	assert.Equal(t, types.ExhaustedAllEndpoints, err.ErrorCode)
	assert.Equal(t, 2, a.Calls())
}

func TestSortUtxosIsStableAndKeepsEveryOutput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		n := rng.Intn(20)
		unspent := make([]types.Unspent, 0, n)
		for i := 0; i < n; i++ {
			vout := uint32(i)
			unspent = append(unspent, types.Unspent{
				Txid:  txid(byte(rng.Intn(4))),
				Vout:  &vout,
				Value: uint64(rng.Intn(5)) * 1000,
			})
		}

		sorted := SortUtxos(unspent)
		require.Len(t, sorted, n)

		seen := make(map[string]int, n)
		for _, u := range unspent {
			seen[u.ToUtxo().String()]++
		}
		for i, u := range sorted {
			seen[u.String()]--
			if i == 0 {
				continue
			}
			prev := sorted[i-1]
			require.LessOrEqual(t, prev.Value, u.Value)
			if prev.Value == u.Value {
				// vout is the upstream position here
				require.Less(t, prev.Vout, u.Vout, "equal values keep upstream order")
			}
		}
		for outpoint, count := range seen {
			require.Zero(t, count, outpoint)
		}
	}
}

func TestSortUtxosNormalizesFields(t *testing.T) {
	utxos := SortUtxos([]types.Unspent{
		{TxHash: txid(0x0a), TxPos: 3, Value: 10},
	})

	require.Len(t, utxos, 1)
	assert.Equal(t, txid(0x0a), utxos[0].Txid)
	assert.Equal(t, uint32(3), utxos[0].Vout)
	assert.NotNil(t, utxos[0].Atomicals)
}

func TestFirstSpendable(t *testing.T) {
	utxos := []types.Utxo{
		{Txid: txid(0x01), Value: 600, Atomicals: []string{}},
		{Txid: txid(0x02), Value: 900, Atomicals: []string{"atom"}},
		{Txid: txid(0x03), Value: 1000, Atomicals: []string{}},
	}

	assert.Equal(t, txid(0x01), FirstSpendable(utxos, 0).Txid)
	assert.Equal(t, txid(0x03), FirstSpendable(utxos, 700).Txid)
	assert.Equal(t, txid(0x03), FirstSpendable(utxos, 1000).Txid)
	assert.Nil(t, FirstSpendable(utxos, 1001))
	assert.Nil(t, FirstSpendable(nil, 1))
}
