package miio

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/rs/zerolog/log"
	"net"
	"strconv"
	"time"
)

const DefaultPort uint16 = 54321

const dialTimeout = 1 * time.Second
const writeTimeout = 1 * time.Second
const readTimeout = 2 * time.Second
const maxResponseSize = 4096

type rpcRequest struct {
	ID     int    `json:"id"`
	Method string `json:"method"`
	Params []any  `json:"params"`
}

type rpcResponse struct {
	ID     int       `json:"id"`
	Result []any     `json:"result"`
	Error  *RPCError `json:"error"`
}

// RPCError is a failure reported by the device itself, as opposed to a
// network or framing failure.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return "device returned error code " + strconv.Itoa(e.Code) + ": " + e.Message
}

// Session is a single blocking request/response channel to one device. It is
// not safe for concurrent use; concurrent callers need their own Session.
type Session struct {
	conn      net.Conn
	token     []byte
	deviceID  uint32
	stamp     uint32
	stampedAt time.Time
	requestID int
}

// Dial opens a UDP session and performs the hello handshake, which yields the
// device id and clock stamp every subsequent frame must carry.
func Dial(ip string, port uint16, hexToken string) (*Session, error) {
	token, err := hex.DecodeString(hexToken)
	if err != nil {
		return nil, fmt.Errorf("could not decode device token as hex: %w", err)
	}
	if len(token) != 16 {
		return nil, errors.New("expected a 16 byte device token, got " + strconv.Itoa(len(token)) + " bytes")
	}
	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.Dial("udp", ip+":"+strconv.Itoa(int(port)))
	if err != nil {
		return nil, fmt.Errorf("could not dial %s: %w", ip, err)
	}
	session := &Session{conn: conn, token: token}
	if err := session.handshake(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("could not handshake with %s: %w", ip, err)
	}
	return session, nil
}

func (s *Session) Close() error {
	return s.conn.Close()
}

func (s *Session) handshake() error {
	reply, err := s.exchangeFrame(helloPacket())
	if err != nil {
		return err
	}
	hello, err := decodePacket(reply)
	if err != nil {
		return err
	}
	s.deviceID = hello.deviceID
	s.stamp = hello.stamp
	s.stampedAt = time.Now()
	log.Debug().Uint32("device_id", hello.deviceID).Uint32("stamp", hello.stamp).Msg("miio handshake complete")
	return nil
}

// Send issues one RPC round trip and returns the device's result list
// unchanged. There are no retries; any failure surfaces to the caller.
func (s *Session) Send(method string, params []any) ([]any, error) {
	s.requestID++
	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(rpcRequest{ID: s.requestID, Method: method, Params: params})
	if err != nil {
		return nil, fmt.Errorf("could not marshal %s request: %w", method, err)
	}
	payload, err := encryptPayload(s.token, body)
	if err != nil {
		return nil, fmt.Errorf("could not encrypt %s request: %w", method, err)
	}

	frame := encodePacket(s.deviceID, s.currentStamp(), s.token, payload)
	reply, err := s.exchangeFrame(frame)
	if err != nil {
		return nil, fmt.Errorf("could not exchange %s request: %w", method, err)
	}
	response, err := decodePacket(reply)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s response frame: %w", method, err)
	}
	if !response.verifyChecksum(s.token) {
		return nil, errors.New("response frame checksum does not match device token")
	}
	clearText, err := decryptPayload(s.token, response.payload)
	if err != nil {
		return nil, fmt.Errorf("could not decrypt %s response: %w", method, err)
	}

	// Some firmwares terminate the JSON payload with NUL bytes.
	clearText = bytes.TrimRight(clearText, "\x00")
	var parsed rpcResponse
	if err := json.Unmarshal(clearText, &parsed); err != nil {
		return nil, fmt.Errorf("could not unmarshal %s response payload: %w", method, err)
	}
	if parsed.Error != nil {
		return nil, parsed.Error
	}
	return parsed.Result, nil
}

// The device rejects frames whose stamp lags its clock, so requests carry the
// handshake stamp advanced by the seconds elapsed since.
func (s *Session) currentStamp() uint32 {
	return s.stamp + uint32(time.Since(s.stampedAt).Seconds())
}

func (s *Session) exchangeFrame(frame []byte) ([]byte, error) {
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return nil, fmt.Errorf("could not set write timeout on connection: %w", err)
	}
	bytesWritten, err := s.conn.Write(frame)
	if err != nil {
		return nil, fmt.Errorf("could not write frame to connection: %w", err)
	}
	if bytesWritten != len(frame) {
		return nil, errors.New("short write: sent " + strconv.Itoa(bytesWritten) +
			" of " + strconv.Itoa(len(frame)) + " bytes")
	}

	if err := s.conn.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
		return nil, fmt.Errorf("could not set read timeout on connection: %w", err)
	}
	buffer := make([]byte, maxResponseSize)
	bytesRead, err := s.conn.Read(buffer)
	if err != nil {
		return nil, fmt.Errorf("could not read response frame: %w", err)
	}
	return buffer[:bytesRead], nil
}
