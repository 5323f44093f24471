package device

import (
	"encoding/binary"
	"errors"
	"io"
	"net"
	"time"

	"github.com/muurk/kasactl/internal/logging"
	"github.com/muurk/kasactl/internal/protocol"
)

// MaxResponseSize caps the payload length a response header may
// declare. Real plug responses are a few KiB; anything larger means a
// desynchronized or hostile peer and is refused before allocation.
const MaxResponseSize = 1 << 20

// sendReceive performs one complete request/response exchange: dial,
// write the encoded frame, read the reply, close. The connection is
// released on every exit path. A zero timeout means block indefinitely;
// a positive timeout bounds dial, write, and read individually with the
// same duration.
//
// The reply is read by its own declared length: exactly 4 header bytes,
// then exactly the payload count they announce. The returned buffer is
// the raw frame (header included) for DecodeFrame to validate. When the
// plug closes the connection mid-frame, the partial buffer is returned
// so the codec reports the precise framing failure instead of a generic
// I/O error.
func sendReceive(addr string, frame []byte, timeout time.Duration) ([]byte, error) {
	conn, err := dial(addr, timeout)
	if err != nil {
		return nil, NewIOError("failed to connect to plug", addr, err)
	}
	defer func() { _ = conn.Close() }()

	if timeout > 0 {
		if err := conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
			return nil, NewIOError("failed to set write deadline", addr, err)
		}
	}
	if _, err := conn.Write(frame); err != nil {
		return nil, NewIOError("failed to send request frame", addr, err)
	}

	if timeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return nil, NewIOError("failed to set read deadline", addr, err)
		}
	}

	header := make([]byte, protocol.HeaderLen)
	n, err := io.ReadFull(conn, header)
	if err != nil {
		if closedEarly(err) {
			return header[:n], nil
		}
		return nil, NewIOError("failed to read response header", addr, err)
	}

	declared := binary.BigEndian.Uint32(header)
	if declared > MaxResponseSize {
		return nil, NewIOError("declared response length exceeds limit", addr, nil)
	}

	payload := make([]byte, declared)
	n, err = io.ReadFull(conn, payload)
	if err != nil {
		if closedEarly(err) {
			return append(header, payload[:n]...), nil
		}
		return nil, NewIOError("failed to read response payload", addr, err)
	}

	logging.LogRawBytes("plug response frame", append(header, payload...))
	return append(header, payload...), nil
}

func dial(addr string, timeout time.Duration) (net.Conn, error) {
	if timeout > 0 {
		return net.DialTimeout("tcp", addr, timeout)
	}
	return net.Dial("tcp", addr)
}

// closedEarly reports a connection that ended before the expected byte
// count, as opposed to a transport fault.
func closedEarly(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
