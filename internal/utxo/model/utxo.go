package model

// UTXO is an unspent output together with its position in the producing transaction's vout.
type UTXO struct {
	Index  int32
	Output Output
}

// Outputs is the UTXO index record stored under a transaction id.
// Entries keep their original vout positions and are ordered by Index.
type Outputs struct {
	Outputs []UTXO
}

// Selection maps a transaction id to the vout positions chosen for spending.
type Selection map[string][]int32

// Wallet is an Ed25519 key pair.
type Wallet struct {
	SecretKey []byte
	PublicKey []byte
}
