package shared

import (
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/spacemeshos/sha256-simd"
	"github.com/stretchr/testify/require"

	"github.com/zkcplabs/zkcp/oracle"
)

func testKeyPair(tb testing.TB, fill byte) (*secp256k1.PrivateKey, *secp256k1.PublicKey) {
	tb.Helper()
	var buf [32]byte
	for i := range buf {
		buf[i] = fill
	}
	secretKey := secp256k1.PrivKeyFromBytes(buf[:])
	return secretKey, secretKey.PubKey()
}

func TestTranscriptIsOrderSensitive(t *testing.T) {
	r := require.New(t)

	a := NewTranscript().Append([]byte("one")).Append([]byte("two")).Sum()
	b := NewTranscript().Append([]byte("two")).Append([]byte("one")).Sum()
	r.NotEqual(a, b)

	// Hashing the fields as one ordered stream.
	r.Equal(sha256.Sum256([]byte("onetwo")), a)
}

func TestSchnorrChallengeBindsProgramIdentity(t *testing.T) {
	r := require.New(t)

	_, publicKey := testKeyPair(t, 3)
	_, publicNonce := testKeyPair(t, 5)

	var idA, idB [32]byte
	idB[31] = 1

	ea := SchnorrChallenge(idA, publicNonce, publicKey)
	eb := SchnorrChallenge(idB, publicNonce, publicKey)
	r.False(ea.Equals(&eb))

	// Deterministic for identical inputs.
	again := SchnorrChallenge(idA, publicNonce, publicKey)
	r.True(ea.Equals(&again))

	// Swapping nonce and key changes the challenge.
	swapped := SchnorrChallenge(idA, publicKey, publicNonce)
	r.False(ea.Equals(&swapped))
}

func TestDlogProofJournalAccessors(t *testing.T) {
	r := require.New(t)

	journal := make([]byte, 64+10)
	journal[31] = 7  // challenge = 7
	journal[63] = 9  // signature = 9
	journal[64] = 42 // appendix

	proof := &DlogProof{Attestation: oracle.Attestation{Journal: journal}}

	challenge, err := proof.Challenge()
	r.NoError(err)
	var seven secp256k1.ModNScalar
	seven.SetInt(7)
	r.True(challenge.Equals(&seven))

	sig, err := proof.Signature()
	r.NoError(err)
	var nine secp256k1.ModNScalar
	nine.SetInt(9)
	r.True(sig.Equals(&nine))

	r.Equal(journal[64:], proof.Appendix())
}

func TestDlogProofRejectsNonCanonicalScalars(t *testing.T) {
	r := require.New(t)

	journal := make([]byte, 64)
	for i := 0; i < 32; i++ {
		journal[i] = 0xFF // above the curve order
	}
	proof := &DlogProof{Attestation: oracle.Attestation{Journal: journal}}

	_, err := proof.Challenge()
	r.ErrorContains(err, "overflows the curve order")

	_, err = proof.Signature()
	r.NoError(err) // bytes 32..64 are zero, which is canonical
}

func TestDlogProofShortJournal(t *testing.T) {
	r := require.New(t)

	proof := &DlogProof{Attestation: oracle.Attestation{Journal: make([]byte, 40)}}

	_, err := proof.Challenge()
	r.NoError(err)

	_, err = proof.Signature()
	var lenErr JournalLengthError
	r.ErrorAs(err, &lenErr)
	r.Equal(64, lenErr.Expected)
	r.Equal(40, lenErr.Given)

	r.Nil(proof.Appendix())
}

func TestDlogProofSerializationRoundTrip(t *testing.T) {
	r := require.New(t)

	_, publicKey := testKeyPair(t, 3)
	_, publicNonce := testKeyPair(t, 5)

	proof := &DlogProof{
		PublicKey:   publicKey,
		PublicNonce: publicNonce,
		Attestation: oracle.Attestation{
			Journal: []byte("journal bytes"),
			Seal:    []byte("seal bytes"),
		},
	}

	data, err := proof.Bytes()
	r.NoError(err)

	decoded, err := DlogProofFromBytes(data)
	r.NoError(err)
	r.True(decoded.PublicKey.IsEqual(publicKey))
	r.True(decoded.PublicNonce.IsEqual(publicNonce))
	r.Equal(proof.Attestation, decoded.Attestation)
}

func TestDlogProofFromBytesValidatesPoints(t *testing.T) {
	r := require.New(t)

	_, err := DlogProofFromBytes(make([]byte, 10))
	r.ErrorContains(err, "invalid proof length")

	// 33 bytes that are not a valid compressed point.
	data := make([]byte, 80)
	data[0] = 0x02
	_, err = DlogProofFromBytes(data)
	r.ErrorContains(err, "invalid public key encoding")

	// Valid key, corrupt nonce.
	_, publicKey := testKeyPair(t, 3)
	data = append(publicKey.SerializeCompressed(), make([]byte, 40)...)
	_, err = DlogProofFromBytes(data)
	r.ErrorContains(err, "invalid public nonce encoding")
}

func TestPreimageProofSerializationRoundTrip(t *testing.T) {
	r := require.New(t)

	journal := make([]byte, 32+8)
	journal[0] = 0xAB
	journal[32] = 0xCD

	proof := &PreimageProof{Attestation: oracle.Attestation{
		Journal: journal,
		Seal:    []byte{1, 2, 3},
	}}

	data, err := proof.Bytes()
	r.NoError(err)

	decoded, err := PreimageProofFromBytes(data)
	r.NoError(err)
	r.Equal(proof.Attestation, decoded.Attestation)

	hash, err := decoded.Hash()
	r.NoError(err)
	r.Equal(journal[:32], hash[:])
	r.Equal(journal[32:], decoded.Appendix())

	_, err = PreimageProofFromBytes([]byte{1})
	r.ErrorContains(err, "failed to unmarshal attestation")
}
