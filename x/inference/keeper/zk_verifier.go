package keeper

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/infera-chain/infera/x/inference/types"
)

// AttestationCircuit binds a model, an input and a claimed result. The prover
// knows an execution trace commitment whose MiMC hash together with the model
// and input commitments equals the public result commitment.
//
// Public inputs:
//   - ModelCommitment:  model hash reduced into the BN254 scalar field
//   - InputCommitment:  SHA-256 of the request input, reduced likewise
//   - ResultCommitment: claimed result hash, reduced likewise
type AttestationCircuit struct {
	ModelCommitment  frontend.Variable `gnark:",public"`
	InputCommitment  frontend.Variable `gnark:",public"`
	ResultCommitment frontend.Variable `gnark:",public"`

	Trace frontend.Variable `gnark:",private"`
}

// Define implements the gnark Circuit interface.
func (c *AttestationCircuit) Define(api frontend.API) error {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return fmt.Errorf("init circuit hasher: %w", err)
	}

	h.Write(c.ModelCommitment, c.InputCommitment, c.Trace)
	api.AssertIsEqual(h.Sum(), c.ResultCommitment)

	return nil
}

// Groth16Verifier verifies response proofs against the per-model verifying
// keys stored in module state.
type Groth16Verifier struct {
	keeper *Keeper
}

var _ types.ProofVerifier = (*Groth16Verifier)(nil)

// NewGroth16Verifier creates the production proof verifier.
func NewGroth16Verifier(k *Keeper) *Groth16Verifier {
	return &Groth16Verifier{keeper: k}
}

// VerifyProof checks a Groth16 proof over BN254 for the model's registered
// verifying key and the public commitments derived from the request.
func (v *Groth16Verifier) VerifyProof(ctx sdk.Context, modelHash string, inputData []byte, resultHash string, proof []byte) error {
	vkBytes, found := v.keeper.GetModelVerifyingKey(ctx, modelHash)
	if !found {
		return fmt.Errorf("no verifying key registered for model %s", modelHash)
	}

	vk := groth16.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(bytes.NewReader(vkBytes)); err != nil {
		return fmt.Errorf("deserialize verifying key: %w", err)
	}

	zkProof := groth16.NewProof(ecc.BN254)
	if _, err := zkProof.ReadFrom(bytes.NewReader(proof)); err != nil {
		return fmt.Errorf("deserialize proof: %w", err)
	}

	modelCommitment, err := hexHashToField(modelHash)
	if err != nil {
		return fmt.Errorf("model commitment: %w", err)
	}
	resultCommitment, err := hexHashToField(resultHash)
	if err != nil {
		return fmt.Errorf("result commitment: %w", err)
	}
	inputDigest := sha256.Sum256(inputData)
	inputCommitment := bytesToField(inputDigest[:])

	assignment := &AttestationCircuit{
		ModelCommitment:  modelCommitment,
		InputCommitment:  inputCommitment,
		ResultCommitment: resultCommitment,
	}

	publicWitness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("build public witness: %w", err)
	}

	if err := groth16.Verify(zkProof, vk, publicWitness); err != nil {
		return fmt.Errorf("groth16 verification: %w", err)
	}

	return nil
}

// hexHashToField decodes a hex digest and reduces it into the scalar field.
func hexHashToField(h string) (*big.Int, error) {
	raw, err := hex.DecodeString(h)
	if err != nil {
		return nil, err
	}
	return bytesToField(raw), nil
}

func bytesToField(b []byte) *big.Int {
	v := new(big.Int).SetBytes(b)
	return v.Mod(v, ecc.BN254.ScalarField())
}
