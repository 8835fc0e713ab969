package cli

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/infera-chain/infera/x/inference/types"
)

// GetTxCmd returns the transaction commands for the inference module
func GetTxCmd() *cobra.Command {
	inferenceTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Inference transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	inferenceTxCmd.AddCommand(
		CmdCreateRequest(),
		CmdSubmitResponse(),
		CmdClaimRewards(),
		CmdWithdrawStake(),
		CmdAuthorizeNode(),
		CmdSlashNode(),
		CmdSetModelPrice(),
		CmdSetModelVerifyingKey(),
	)

	return inferenceTxCmd
}

// CmdCreateRequest returns a CLI command handler for opening an inference request
func CmdCreateRequest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-request [model-hash] [input-file] [min-consensus] [reward]",
		Short: "Escrow a reward and open an inference request",
		Long: `Open an inference request for a priced model. The input file is read
verbatim and carried as opaque bytes; min-consensus is the number of agreeing
responses required.

Example:
  $ inferad tx inference create-request 9f86d0…b00a08 input.bin 3 5000000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			inputData, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read input file: %w", err)
			}

			minConsensus, err := strconv.ParseUint(args[2], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid min consensus: %w", err)
			}

			reward, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid reward amount: %s", args[3])
			}

			msg := &types.MsgCreateRequest{
				Requester:    clientCtx.GetFromAddress().String(),
				ModelHash:    args[0],
				InputData:    inputData,
				MinConsensus: uint32(minConsensus),
				Reward:       reward,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSubmitResponse returns a CLI command handler for submitting a node response
func CmdSubmitResponse() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-response [request-id] [result-hash] [proof-b64] [pubkey-b64] [signature-b64]",
		Short: "Submit an attested inference result for an open request",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			proof, err := base64.StdEncoding.DecodeString(args[2])
			if err != nil {
				return fmt.Errorf("invalid proof encoding: %w", err)
			}
			pubKey, err := base64.StdEncoding.DecodeString(args[3])
			if err != nil {
				return fmt.Errorf("invalid public key encoding: %w", err)
			}
			signature, err := base64.StdEncoding.DecodeString(args[4])
			if err != nil {
				return fmt.Errorf("invalid signature encoding: %w", err)
			}

			msg := &types.MsgSubmitResponse{
				Node:       clientCtx.GetFromAddress().String(),
				RequestId:  args[0],
				ResultHash: args[1],
				Proof:      proof,
				PublicKey:  pubKey,
				Signature:  signature,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdClaimRewards returns a CLI command handler for claiming accrued rewards
func CmdClaimRewards() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim-rewards",
		Short: "Withdraw the sender's full reward credit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgClaimRewards{Node: clientCtx.GetFromAddress().String()}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawStake returns a CLI command handler for withdrawing stake
func CmdWithdrawStake() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-stake [amount]",
		Short: "Withdraw part of the sender's escrowed stake",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid amount: %s", args[0])
			}

			msg := &types.MsgWithdrawStake{
				Node:   clientCtx.GetFromAddress().String(),
				Amount: amount,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAuthorizeNode returns a CLI command handler for the admin authorize operation
func CmdAuthorizeNode() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "authorize-node [node-address] [stake]",
		Short: "Authorize a node, escrowing stake from its balance (authority only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			stake, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid stake: %s", args[1])
			}

			msg := &types.MsgAuthorizeNode{
				Authority: clientCtx.GetFromAddress().String(),
				Node:      args[0],
				Stake:     stake,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSlashNode returns a CLI command handler for the admin slash operation
func CmdSlashNode() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slash-node [node-address] [penalty]",
		Short: "Slash a node's stake and reputation (authority only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			penalty, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid penalty: %s", args[1])
			}

			msg := &types.MsgSlashNode{
				Authority: clientCtx.GetFromAddress().String(),
				Node:      args[0],
				Penalty:   penalty,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetModelPrice returns a CLI command handler for setting a model's price
func CmdSetModelPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-model-price [model-hash] [price]",
		Short: "Set the floor price for a model (authority only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			price, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid price: %s", args[1])
			}

			msg := &types.MsgSetModelPrice{
				Authority: clientCtx.GetFromAddress().String(),
				ModelHash: args[0],
				Price:     price,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetModelVerifyingKey returns a CLI command handler for registering a verifying key
func CmdSetModelVerifyingKey() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-model-verifying-key [model-hash] [vk-file]",
		Short: "Register the Groth16 verifying key for a model (authority only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			vk, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read verifying key file: %w", err)
			}

			msg := &types.MsgSetModelVerifyingKey{
				Authority:    clientCtx.GetFromAddress().String(),
				ModelHash:    args[0],
				VerifyingKey: vk,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
