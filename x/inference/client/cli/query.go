package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/infera-chain/infera/x/inference/keeper"
	"github.com/infera-chain/infera/x/inference/types"
)

// GetQueryCmd returns the cli query commands for the inference module.
// State records are JSON-encoded, so commands read the module store directly
// and print the decoded record.
func GetQueryCmd() *cobra.Command {
	inferenceQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the inference module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	inferenceQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryRequest(),
		GetCmdQueryNode(),
		GetCmdQueryModelPrice(),
		GetCmdQueryRewardCredit(),
	)

	return inferenceQueryCmd
}

func queryModuleStore(cmd *cobra.Command, key []byte) (json.RawMessage, error) {
	clientCtx, err := client.GetClientQueryContext(cmd)
	if err != nil {
		return nil, err
	}

	bz, _, err := clientCtx.QueryStore(key, types.StoreKey)
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, fmt.Errorf("not found")
	}

	return json.RawMessage(bz), nil
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current inference module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(keeper.ParamsKey, types.StoreKey)
			if err != nil {
				return err
			}
			if bz == nil {
				out, err := json.MarshalIndent(types.DefaultParams(), "", "  ")
				if err != nil {
					return err
				}
				return clientCtx.PrintString(string(out) + "\n")
			}

			return clientCtx.PrintString(string(bz) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryRequest returns the command to query a request by ID
func GetCmdQueryRequest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request [request-id]",
		Short: "Query an inference request by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, err := queryModuleStore(cmd, keeper.RequestKey(args[0]))
			if err != nil {
				return fmt.Errorf("request %s: %w", args[0], err)
			}

			return clientCtx.PrintString(string(bz) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryNode returns the command to query a node account
func GetCmdQueryNode() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node [address]",
		Short: "Query a node's stake, reputation and authorization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			addr, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return fmt.Errorf("invalid address: %w", err)
			}

			bz, err := queryModuleStore(cmd, keeper.NodeKey(addr))
			if err != nil {
				return fmt.Errorf("node %s: %w", args[0], err)
			}

			return clientCtx.PrintString(string(bz) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryModelPrice returns the command to query a model's floor price
func GetCmdQueryModelPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model-price [model-hash]",
		Short: "Query the floor price for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, err := queryModuleStore(cmd, keeper.ModelPriceKey(args[0]))
			if err != nil {
				return fmt.Errorf("model %s: %w", args[0], err)
			}

			return clientCtx.PrintString(string(bz) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryRewardCredit returns the command to query pending reward credit
func GetCmdQueryRewardCredit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reward-credit [address]",
		Short: "Query an address's withdrawable reward credit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			addr, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return fmt.Errorf("invalid address: %w", err)
			}

			bz, _, err := clientCtx.QueryStore(keeper.RewardCreditKey(addr), types.StoreKey)
			if err != nil {
				return err
			}
			if bz == nil {
				return clientCtx.PrintString("\"0\"\n")
			}

			return clientCtx.PrintString(string(bz) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
