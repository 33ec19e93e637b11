package crypto

import (
	"context"
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	clienttx "github.com/cosmos/cosmos-sdk/client/tx"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
)

const signerUID = "transfer"

// Signer is a one-shot signing capability backed by an in-memory keyring
// holding exactly one key. Close it once the transaction is signed.
type Signer struct {
	keyring keyring.Keyring
	address string
	pubKey  cryptotypes.PubKey
}

// NewSigner imports mnemonic into a fresh in-memory keyring
func NewSigner(mnemonic, prefix string, cdc codec.Codec) (*Signer, error) {
	if err := ValidateMnemonic(mnemonic); err != nil {
		return nil, err
	}

	kr := keyring.NewInMemory(cdc)
	record, err := kr.NewAccount(signerUID, mnemonic, "", HDPath, hd.Secp256k1)
	if err != nil {
		return nil, fmt.Errorf("failed to import key: %w", err)
	}

	pubKey, err := record.GetPubKey()
	if err != nil {
		return nil, fmt.Errorf("failed to read public key: %w", err)
	}

	address, err := EncodeAddress(prefix, pubKey.Address())
	if err != nil {
		return nil, err
	}

	return &Signer{
		keyring: kr,
		address: address,
		pubKey:  pubKey,
	}, nil
}

// Address returns the bech32 address of the signing key
func (s *Signer) Address() string {
	return s.address
}

// PubKey returns the public key of the signing key
func (s *Signer) PubKey() cryptotypes.PubKey {
	return s.pubKey
}

// Sign signs the transaction in txb with SIGN_MODE_DIRECT, replacing any existing signature
func (s *Signer) Sign(ctx context.Context, txf clienttx.Factory, txb client.TxBuilder) error {
	if err := clienttx.Sign(ctx, txf.WithKeybase(s.keyring), signerUID, txb, true); err != nil {
		return fmt.Errorf("failed to sign transaction: %w", err)
	}
	return nil
}

// Close drops the key from memory
func (s *Signer) Close() {
	_ = s.keyring.Delete(signerUID)
}
