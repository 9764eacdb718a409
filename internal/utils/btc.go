package utils

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

func GetBtcNetParamesFromString(net string) (*chaincfg.Params, error) {
	var netParams chaincfg.Params
	switch net {
	case "mainnet", "bitcoin":
		netParams = chaincfg.MainNetParams
	case "testnet", "testnet3":
		netParams = chaincfg.TestNet3Params
	case "regtest":
		netParams = chaincfg.RegressionNetParams
	case "simnet":
		netParams = chaincfg.SimNetParams
	case "signet":
		netParams = chaincfg.SigNetParams
	default:
		return nil, fmt.Errorf("invalid network: %s", net)
	}
	return &netParams, nil
}

// DecodeAddressForNet parses btcAddress and makes sure it belongs to params.
func DecodeAddressForNet(btcAddress string, params *chaincfg.Params) (btcutil.Address, error) {
	decodedAddr, err := btcutil.DecodeAddress(btcAddress, params)
	if err != nil {
		return nil, fmt.Errorf("can not decode btc address: %w", err)
	}
	if !decodedAddr.IsForNet(params) {
		return nil, fmt.Errorf("address %s is not for network %s", btcAddress, params.Name)
	}
	return decodedAddr, nil
}

// AddressToScripthash returns the Electrum scripthash of the address: the
// sha256 of its output script, hex encoded in reversed byte order.
func AddressToScripthash(addr btcutil.Address) (string, error) {
	pkScript, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return "", fmt.Errorf("failed to build output script: %w", err)
	}
	return chainhash.HashH(pkScript).String(), nil
}

// IsValidTxHex checks if the given string is a valid serialized BTC transaction
// Note: it does not check the actual content of the transaction.
func IsValidTxHex(txHex string) bool {
	txBytes, err := hex.DecodeString(txHex)
	if err != nil || len(txBytes) == 0 {
		return false
	}
	var tx wire.MsgTx
	return tx.Deserialize(bytes.NewReader(txBytes)) == nil
}
