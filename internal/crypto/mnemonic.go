package crypto

import (
	"fmt"
	"strings"

	"github.com/AlexZinkM/leochain-explorer/internal/model"

	"github.com/cosmos/cosmos-sdk/crypto/hd"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/cosmos/go-bip39"
)

const (
	// 256 bits of entropy encode to 24 words
	mnemonicEntropyBits = 256
	// MnemonicWords is the word count of generated mnemonics
	MnemonicWords = 24
)

// HDPath is the derivation path of the first Cosmos account: m/44'/118'/0'/0/0
var HDPath = hd.CreateHDPath(sdk.CoinType, 0, 0).String()

// NewMnemonic generates a new random 24-word BIP39 mnemonic
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}
	defer clear(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// NormalizeMnemonic lowercases the words and collapses any whitespace to single spaces
func NormalizeMnemonic(mnemonic string) string {
	return strings.Join(strings.Fields(strings.ToLower(mnemonic)), " ")
}

// ValidateMnemonic checks the word count, the word list and the checksum
func ValidateMnemonic(mnemonic string) error {
	switch len(strings.Fields(mnemonic)) {
	case 12, 15, 18, 21, 24:
	default:
		return fmt.Errorf("%w: unexpected word count", model.ErrInvalidMnemonic)
	}
	if !bip39.IsMnemonicValid(mnemonic) {
		return fmt.Errorf("%w: unknown word or bad checksum", model.ErrInvalidMnemonic)
	}
	return nil
}

// DeriveAddress derives the bech32 account address of the first secp256k1 key of mnemonic
func DeriveAddress(mnemonic, prefix string) (string, error) {
	if err := ValidateMnemonic(mnemonic); err != nil {
		return "", err
	}

	algo := hd.Secp256k1
	derived, err := algo.Derive()(mnemonic, "", HDPath)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(derived)

	privKey := algo.Generate()(derived)
	return EncodeAddress(prefix, privKey.PubKey().Address())
}

// EncodeAddress bech32-encodes raw address bytes with prefix
func EncodeAddress(prefix string, addr []byte) (string, error) {
	encoded, err := bech32.ConvertAndEncode(prefix, addr)
	if err != nil {
		return "", fmt.Errorf("failed to encode address: %w", err)
	}
	return encoded, nil
}

// ValidateAddress checks that address is bech32 with the expected prefix
func ValidateAddress(address, prefix string) error {
	hrp, bz, err := bech32.DecodeAndConvert(address)
	if err != nil {
		return fmt.Errorf("invalid address: %w", err)
	}
	if hrp != prefix {
		return fmt.Errorf("invalid address prefix %q, expected %q", hrp, prefix)
	}
	if len(bz) == 0 {
		return fmt.Errorf("invalid address: empty payload")
	}
	return nil
}
