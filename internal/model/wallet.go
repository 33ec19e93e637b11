package model

// SealedStorage represents the on-disk envelope of an encrypted storage file
type SealedStorage struct {
	Version    int    `json:"version"`
	ScryptN    int    `json:"scryptN"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}
