package miio

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"fmt"
	"github.com/mergermarket/go-pkcs7"
)

// The payload cipher is AES-128-CBC with both key and IV derived from the
// 16-byte device token: key = md5(token), iv = md5(key || token).
func cipherKeyAndIv(token []byte) (key, iv []byte) {
	keySum := md5.Sum(token)
	ivSum := md5.Sum(append(keySum[:], token...))
	return keySum[:], ivSum[:]
}

func encryptPayload(token, clearText []byte) ([]byte, error) {
	key, iv := cipherKeyAndIv(token)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("could not construct payload cipher: %w", err)
	}
	encrypter := cipher.NewCBCEncrypter(block, iv)
	padded, err := pkcs7.Pad(clearText, encrypter.BlockSize())
	if err != nil {
		return nil, fmt.Errorf("could not pad payload: %w", err)
	}
	cipherText := make([]byte, len(padded))
	encrypter.CryptBlocks(cipherText, padded)
	return cipherText, nil
}

func decryptPayload(token, cipherText []byte) ([]byte, error) {
	key, iv := cipherKeyAndIv(token)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("could not construct payload cipher: %w", err)
	}
	decrypter := cipher.NewCBCDecrypter(block, iv)
	if len(cipherText)%decrypter.BlockSize() != 0 {
		return nil, fmt.Errorf("ciphertext length %d is not a multiple of the cipher block size", len(cipherText))
	}
	clearText := make([]byte, len(cipherText))
	decrypter.CryptBlocks(clearText, cipherText)
	return pkcs7.Unpad(clearText, decrypter.BlockSize())
}
