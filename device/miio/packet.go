package miio

import (
	"bytes"
	"crypto/md5"
	"encoding/binary"
	"errors"
	"strconv"
)

// Every frame starts with a fixed 32-byte header:
//
//	magic (2) | total length (2) | reserved (4) | device id (4) | stamp (4) | md5 checksum (16)
//
// The checksum is md5 over the header with the device token in the checksum
// slot, followed by the encrypted payload. Hello frames carry no payload and
// fill everything after the length with 0xff.
const headerLength = 32

var magicBytes = []byte{0x21, 0x31}

type packet struct {
	deviceID uint32
	stamp    uint32
	checksum []byte
	payload  []byte
}

func helloPacket() []byte {
	buffer := make([]byte, headerLength)
	copy(buffer, magicBytes)
	binary.BigEndian.PutUint16(buffer[2:4], headerLength)
	for i := 4; i < headerLength; i++ {
		buffer[i] = 0xff
	}
	return buffer
}

func encodePacket(deviceID, stamp uint32, token, payload []byte) []byte {
	buffer := make([]byte, headerLength+len(payload))
	copy(buffer, magicBytes)
	binary.BigEndian.PutUint16(buffer[2:4], uint16(headerLength+len(payload)))
	binary.BigEndian.PutUint32(buffer[8:12], deviceID)
	binary.BigEndian.PutUint32(buffer[12:16], stamp)
	copy(buffer[headerLength:], payload)

	sum := md5.New()
	sum.Write(buffer[:16])
	sum.Write(token)
	sum.Write(payload)
	copy(buffer[16:headerLength], sum.Sum(nil))
	return buffer
}

func decodePacket(raw []byte) (*packet, error) {
	if len(raw) < headerLength {
		return nil, errors.New("frame too short: received " + strconv.Itoa(len(raw)) + " bytes")
	}
	if !bytes.Equal(raw[0:2], magicBytes) {
		return nil, errors.New("frame does not start with the expected magic bytes")
	}
	expectedSize := int(binary.BigEndian.Uint16(raw[2:4]))
	if expectedSize != len(raw) {
		return nil, errors.New("unexpected frame size: expected " + strconv.Itoa(expectedSize) +
			" bytes but received " + strconv.Itoa(len(raw)) + " bytes")
	}
	return &packet{
		deviceID: binary.BigEndian.Uint32(raw[8:12]),
		stamp:    binary.BigEndian.Uint32(raw[12:16]),
		checksum: raw[16:headerLength],
		payload:  raw[headerLength:],
	}, nil
}

func (p *packet) verifyChecksum(token []byte) bool {
	header := make([]byte, 16)
	copy(header, magicBytes)
	binary.BigEndian.PutUint16(header[2:4], uint16(headerLength+len(p.payload)))
	binary.BigEndian.PutUint32(header[8:12], p.deviceID)
	binary.BigEndian.PutUint32(header[12:16], p.stamp)

	sum := md5.New()
	sum.Write(header)
	sum.Write(token)
	sum.Write(p.payload)
	return bytes.Equal(sum.Sum(nil), p.checksum)
}
