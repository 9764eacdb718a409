package types

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Unspent is one entry of blockchain.scripthash.listunspent. The atomicals
// proxy reports both the ElectrumX names (tx_hash/tx_pos) and its own
// (txid/vout); either pair may be missing.
type Unspent struct {
	Txid      string   `json:"txid"`
	TxHash    string   `json:"tx_hash"`
	Vout      *uint32  `json:"vout,omitempty"`
	TxPos     uint32   `json:"tx_pos"`
	Height    int64    `json:"height"`
	Value     uint64   `json:"value"`
	Atomicals []string `json:"atomicals"`
}

// Utxo is the normalized form handed to callers.
type Utxo struct {
	Txid      string   `json:"txid"`
	Vout      uint32   `json:"vout"`
	Value     uint64   `json:"value"`
	Height    int64    `json:"height"`
	Atomicals []string `json:"atomicals"`
}

func (u Unspent) ToUtxo() Utxo {
	txid := u.Txid
	if txid == "" {
		txid = u.TxHash
	}
	vout := u.TxPos
	if u.Vout != nil {
		vout = *u.Vout
	}
	atomicals := u.Atomicals
	if atomicals == nil {
		atomicals = []string{}
	}
	return Utxo{
		Txid:      txid,
		Vout:      vout,
		Value:     u.Value,
		Height:    u.Height,
		Atomicals: atomicals,
	}
}

// IsSpendable reports whether the output carries no atomicals and holds at
// least minSatoshis.
func (u Utxo) IsSpendable(minSatoshis uint64) bool {
	return len(u.Atomicals) == 0 && u.Value >= minSatoshis
}

// OutPoint reconstructs the wire outpoint spending this output.
func (u Utxo) OutPoint() (*wire.OutPoint, error) {
	hash, err := chainhash.NewHashFromStr(u.Txid)
	if err != nil {
		return nil, fmt.Errorf("invalid utxo txid %q: %w", u.Txid, err)
	}
	return wire.NewOutPoint(hash, u.Vout), nil
}

func (u Utxo) String() string {
	return fmt.Sprintf("%s:%d", u.Txid, u.Vout)
}
