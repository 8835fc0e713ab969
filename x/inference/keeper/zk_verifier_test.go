package keeper_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	mimcnative "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/infera-chain/infera/testutil/keeper"
	"github.com/infera-chain/infera/x/inference/keeper"
)

// fieldReduce mirrors the commitment derivation: raw bytes reduced into the
// BN254 scalar field.
func fieldReduce(b []byte) *big.Int {
	v := new(big.Int).SetBytes(b)
	return v.Mod(v, ecc.BN254.ScalarField())
}

func fieldBytes(v *big.Int) []byte {
	out := make([]byte, 32)
	return v.FillBytes(out)
}

func TestGroth16VerifierRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("groth16 setup is slow")
	}

	f := testkeeper.NewInferenceFixture(t)

	cs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &keeper.AttestationCircuit{})
	require.NoError(t, err)

	pk, vk, err := groth16.Setup(cs)
	require.NoError(t, err)

	var vkBuf bytes.Buffer
	_, err = vk.WriteTo(&vkBuf)
	require.NoError(t, err)

	modelHash := hashOf("attested-model")
	inputData := []byte("inference input")
	require.NoError(t, f.Keeper.SetModelVerifyingKey(f.Ctx, modelHash, vkBuf.Bytes()))

	modelRaw, err := hex.DecodeString(modelHash)
	require.NoError(t, err)
	modelCommitment := fieldReduce(modelRaw)

	inputDigest := sha256.Sum256(inputData)
	inputCommitment := fieldReduce(inputDigest[:])

	trace := big.NewInt(123456789)

	// The result commitment is the native MiMC digest the circuit re-derives.
	hasher := mimcnative.NewMiMC()
	hasher.Write(fieldBytes(modelCommitment))
	hasher.Write(fieldBytes(inputCommitment))
	hasher.Write(fieldBytes(trace))
	resultHash := hex.EncodeToString(hasher.Sum(nil))

	assignment := &keeper.AttestationCircuit{
		ModelCommitment:  modelCommitment,
		InputCommitment:  inputCommitment,
		ResultCommitment: fieldReduce(hasher.Sum(nil)),
		Trace:            trace,
	}
	witness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	require.NoError(t, err)

	proof, err := groth16.Prove(cs, pk, witness)
	require.NoError(t, err)

	var proofBuf bytes.Buffer
	_, err = proof.WriteTo(&proofBuf)
	require.NoError(t, err)

	verifier := keeper.NewGroth16Verifier(f.Keeper)

	t.Run("accepts a valid proof", func(t *testing.T) {
		err := verifier.VerifyProof(f.Ctx, modelHash, inputData, resultHash, proofBuf.Bytes())
		require.NoError(t, err)
	})

	t.Run("rejects a proof for a different result", func(t *testing.T) {
		err := verifier.VerifyProof(f.Ctx, modelHash, inputData, hashOf("forged-result"), proofBuf.Bytes())
		require.Error(t, err)
	})

	t.Run("rejects a proof for different input data", func(t *testing.T) {
		err := verifier.VerifyProof(f.Ctx, modelHash, []byte("other input"), resultHash, proofBuf.Bytes())
		require.Error(t, err)
	})

	t.Run("rejects malformed proof bytes", func(t *testing.T) {
		err := verifier.VerifyProof(f.Ctx, modelHash, inputData, resultHash, []byte("not a proof"))
		require.Error(t, err)
	})
}

func TestGroth16VerifierRequiresVerifyingKey(t *testing.T) {
	f := testkeeper.NewInferenceFixture(t)
	verifier := keeper.NewGroth16Verifier(f.Keeper)

	err := verifier.VerifyProof(f.Ctx, hashOf("unregistered-model"), []byte("in"), hashOf("result"), []byte("proof"))
	require.ErrorContains(t, err, "no verifying key")
}
