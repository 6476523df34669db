package miio

import (
	"bytes"
	"encoding/hex"
	"github.com/stretchr/testify/assert"
	"testing"
)

func testToken(t *testing.T) []byte {
	token, err := hex.DecodeString("00112233445566778899aabbccddeeff")
	assert.NoError(t, err)
	return token
}

func TestHelloPacketShape(t *testing.T) {
	hello := helloPacket()
	assert.Len(t, hello, headerLength)
	assert.Equal(t, []byte{0x21, 0x31, 0x00, 0x20}, hello[:4])
	for _, b := range hello[4:] {
		assert.Equal(t, byte(0xff), b)
	}
}

func TestPacketRoundTrip(t *testing.T) {
	token := testToken(t)
	payload := []byte("0123456789abcdef") // one cipher block's worth
	frame := encodePacket(0x0055aa11, 0x00001234, token, payload)

	decoded, err := decodePacket(frame)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x0055aa11), decoded.deviceID)
	assert.Equal(t, uint32(0x00001234), decoded.stamp)
	assert.Equal(t, payload, decoded.payload)
	assert.True(t, decoded.verifyChecksum(token))
}

func TestChecksumRejectsTamperedPayload(t *testing.T) {
	token := testToken(t)
	frame := encodePacket(1, 2, token, []byte("0123456789abcdef"))
	frame[len(frame)-1] ^= 0xff

	decoded, err := decodePacket(frame)
	assert.NoError(t, err)
	assert.False(t, decoded.verifyChecksum(token))
}

func TestChecksumRejectsWrongToken(t *testing.T) {
	frame := encodePacket(1, 2, testToken(t), []byte("0123456789abcdef"))
	decoded, err := decodePacket(frame)
	assert.NoError(t, err)

	otherToken := bytes.Repeat([]byte{0x42}, 16)
	assert.False(t, decoded.verifyChecksum(otherToken))
}

func TestDecodeRejectsMalformedFrames(t *testing.T) {
	_, err := decodePacket([]byte{0x21, 0x31})
	assert.Error(t, err)

	frame := encodePacket(1, 2, testToken(t), nil)
	frame[0] = 0x00
	_, err = decodePacket(frame)
	assert.Error(t, err)

	truncated := encodePacket(1, 2, testToken(t), []byte("0123456789abcdef"))
	_, err = decodePacket(truncated[:len(truncated)-4])
	assert.Error(t, err)
}

func TestPayloadEncryptionRoundTrip(t *testing.T) {
	token := testToken(t)
	clearText := []byte(`{"id":1,"method":"get_prop","params":["power"]}`)

	cipherText, err := encryptPayload(token, clearText)
	assert.NoError(t, err)
	assert.NotEqual(t, clearText, cipherText)
	assert.Zero(t, len(cipherText)%16)

	decrypted, err := decryptPayload(token, cipherText)
	assert.NoError(t, err)
	assert.Equal(t, clearText, decrypted)
}
