// Package address converts between public-key hashes and their textual Base58Check form.
package address

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/utxoledger/internal/crypto"
	"github.com/goodnatureofminers/utxoledger/internal/utxo/model"
)

// Codec encodes 20 byte public-key hashes as script-hash addresses of one network.
type Codec struct {
	params *chaincfg.Params
}

// NewCodec initializes a codec using the address parameters of network.
func NewCodec(network model.Network) (*Codec, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &Codec{params: params}, nil
}

// Encode returns the textual address of pubKeyHash.
func (c *Codec) Encode(pubKeyHash []byte) (string, error) {
	addr, err := btcutil.NewAddressScriptHashFromHash(pubKeyHash, c.params)
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrInvalidAddress, err)
	}
	return addr.EncodeAddress(), nil
}

// Decode returns the public-key hash carried by address.
func (c *Codec) Decode(address string) ([]byte, error) {
	decoded, err := btcutil.DecodeAddress(address, c.params)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", model.ErrInvalidAddress, address, err)
	}
	sh, ok := decoded.(*btcutil.AddressScriptHash)
	if !ok || !sh.IsForNet(c.params) {
		return nil, fmt.Errorf("%w %q: not a %s script-hash address", model.ErrInvalidAddress, address, c.params.Name)
	}
	return append([]byte(nil), sh.ScriptAddress()...), nil
}

// FromPublicKey derives the address of an Ed25519 public key.
func (c *Codec) FromPublicKey(publicKey []byte) (string, error) {
	return c.Encode(crypto.HashPubKey(publicKey))
}

func chainParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "", "main", "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
