// Copyright 2025 Certen Protocol
package txn

import (
	"crypto/ed25519"

	certcrypto "github.com/certen/threshold-ballot/crypto"
	"github.com/certen/threshold-ballot/crypto/sign"
	"github.com/certen/threshold-ballot/codec"
	"github.com/certen/threshold-ballot/ids"
)

// Envelope is Signed<T>: the inner transaction plus an
// Ed25519 signature over the canonical CBOR encoding of the inner value
// only -- never the envelope itself, and never JSON.
type Envelope struct {
	Transaction Transaction
	Signature   []byte
}

// Sign builds a signed envelope around tx using signer.
func Sign(signer *sign.Signer, tx Transaction) (Envelope, error) {
	payload, err := codec.MarshalCanonical(tx)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		Transaction: tx,
		Signature:   signer.Sign(payload),
	}, nil
}

// Verify checks the envelope's signature against expectedSigner --
// resolved by the caller per SignerPublicKey's contract (the
// transaction's own declared key, or an externally-resolved one).
func (e Envelope) Verify(expectedSigner ed25519.PublicKey) error {
	payload, err := codec.MarshalCanonical(e.Transaction)
	if err != nil {
		return err
	}
	return certcrypto.VerifyEnvelopeSignature(expectedSigner, payload, e.Signature)
}

// wireEnvelope is the on-the-wire CBOR shape of an Envelope: the payload
// is the inner transaction's own canonical CBOR encoding, kept as an
// opaque byte string so the signature's covered bytes are exactly what
// gets stored and re-verified, with no re-encoding in between.
type wireEnvelope struct {
	Kind      uint8  `cbor:"kind"`
	Payload   []byte `cbor:"payload"`
	Signature []byte `cbor:"signature"`
}

// EncodeEnvelope renders e as canonical CBOR for storage or transport.
func EncodeEnvelope(e Envelope) ([]byte, error) {
	payload, err := codec.MarshalCanonical(e.Transaction)
	if err != nil {
		return nil, err
	}
	w := wireEnvelope{
		Kind:      uint8(e.Transaction.Kind()),
		Payload:   payload,
		Signature: e.Signature,
	}
	return codec.MarshalCanonical(w)
}

// DecodeEnvelope parses bytes produced by EncodeEnvelope, dispatching the
// payload to the concrete transaction variant named by the Kind tag, and
// rejecting any disagreement between that tag and the type byte embedded
// in the decoded transaction's own Identifier.
func DecodeEnvelope(data []byte) (Envelope, error) {
	var w wireEnvelope
	if err := codec.Unmarshal(data, &w); err != nil {
		return Envelope{}, err
	}

	kind := ids.Type(w.Kind)
	if !ids.ValidType(kind) {
		return Envelope{}, ErrUnknownTransactionType
	}

	tx, err := decodePayload(kind, w.Payload)
	if err != nil {
		return Envelope{}, err
	}
	if tx.ID().Type != kind {
		return Envelope{}, ErrUnknownTransactionType
	}

	return Envelope{Transaction: tx, Signature: w.Signature}, nil
}

func decodePayload(kind ids.Type, payload []byte) (Transaction, error) {
	switch kind {
	case ids.Election:
		var t Election
		if err := codec.Unmarshal(payload, &t); err != nil {
			return nil, err
		}
		return t, nil
	case ids.KeyGenPublicKey:
		var t KeyGenPublicKey
		if err := codec.Unmarshal(payload, &t); err != nil {
			return nil, err
		}
		return t, nil
	case ids.Vote:
		var t Vote
		if err := codec.Unmarshal(payload, &t); err != nil {
			return nil, err
		}
		return t, nil
	case ids.VotingEnd:
		var t VotingEnd
		if err := codec.Unmarshal(payload, &t); err != nil {
			return nil, err
		}
		return t, nil
	case ids.Mix:
		var t Mix
		if err := codec.Unmarshal(payload, &t); err != nil {
			return nil, err
		}
		return t, nil
	case ids.PartialDecryption:
		var t PartialDecryption
		if err := codec.Unmarshal(payload, &t); err != nil {
			return nil, err
		}
		return t, nil
	case ids.Decryption:
		var t Decryption
		if err := codec.Unmarshal(payload, &t); err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, ErrUnknownTransactionType
	}
}
