package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wizhodl/atomicalsir/internal/clients/electrumx"
)

type broadcastResult struct {
	Txid string `json:"txid"`
}

func newTickerCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ticker <ticker>",
		Short: "Resolve an atomicals ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, client electrumx.ElectrumXClientInterface) (any, error) {
				ticker, err := client.GetByTicker(ctx, args[0])
				if err != nil {
					return nil, err
				}
				return ticker, nil
			})
		},
	}
}

func newFtInfoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ft-info <atomical-id>",
		Short: "Fetch fungible token metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, client electrumx.ElectrumXClientInterface) (any, error) {
				ft, err := client.GetFtInfo(ctx, args[0])
				if err != nil {
					return nil, err
				}
				return ft, nil
			})
		},
	}
}

func newUtxosCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "utxos <address>",
		Short: "List the unspent outputs of an address, smallest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, client electrumx.ElectrumXClientInterface) (any, error) {
				utxos, err := client.ListUnspentForAddress(ctx, args[0])
				if err != nil {
					return nil, err
				}
				return utxos, nil
			})
		},
	}
}

func newWaitUtxoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "wait-utxo <address> <min-satoshis>",
		Short: "Block until the address holds a spendable output of at least min-satoshis",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minSatoshis, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid min-satoshis %q: %w", args[1], err)
			}
			return opts.run(cmd, func(ctx context.Context, client electrumx.ElectrumXClientInterface) (any, error) {
				utxo, err := client.WaitUntilSpendableUtxo(ctx, args[0], minSatoshis)
				if err != nil {
					return nil, err
				}
				return utxo, nil
			})
		},
	}
}

func newBroadcastCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "broadcast <raw-tx-hex>",
		Short: "Broadcast a raw transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, client electrumx.ElectrumXClientInterface) (any, error) {
				txid, err := client.Broadcast(ctx, args[0])
				if err != nil {
					return nil, err
				}
				return broadcastResult{Txid: txid}, nil
			})
		},
	}
}
