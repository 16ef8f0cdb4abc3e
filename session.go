// SPDX-FileCopyrightText: 2025 The Streamkit authors
// SPDX-License-Identifier: MIT

package trivium

import (
	"net"
	"sync"
	"time"

	"github.com/pion/logging"
)

// SessionKeys bundles the keying material for the two directions of a
// Session. Writes use the local pair, reads the remote pair, so two
// peers must configure them mirrored.
type SessionKeys struct {
	LocalKey  []byte
	LocalIV   []byte
	RemoteKey []byte
	RemoteIV  []byte
}

// Config is used to configure a Session. After a Config is passed to
// NewSession it must not be modified.
type Config struct {
	Keys          SessionKeys
	LoggerFactory logging.LoggerFactory
}

// Session encrypts everything written to the underlying net.Conn and
// decrypts everything read from it, with an independent Cipher per
// direction. Each direction is a single continuous keystream, so both
// peers must process the byte stream in order and without loss.
//
// Session implements net.Conn. Reads and writes are serialized per
// direction; the two directions do not block each other.
type Session struct {
	writeMutex  sync.Mutex
	writeCipher *Cipher

	readMutex  sync.Mutex
	readCipher *Cipher

	log logging.LeveledLogger

	nextConn net.Conn
}

var _ net.Conn = (*Session)(nil)

// NewSession builds a Session on top of conn. Both ciphers are
// constructed and warmed up before the Session is returned, so a nil
// error means the session is ready to carry traffic.
func NewSession(conn net.Conn, config *Config) (*Session, error) {
	if config == nil {
		return nil, errNoConfig
	}
	if conn == nil {
		return nil, errNoConn
	}

	loggerFactory := config.LoggerFactory
	if loggerFactory == nil {
		loggerFactory = logging.NewDefaultLoggerFactory()
	}
	log := loggerFactory.NewLogger("trivium")

	writeCipher, err := NewCipher(config.Keys.LocalKey, config.Keys.LocalIV)
	if err != nil {
		return nil, err
	}
	readCipher, err := NewCipher(config.Keys.RemoteKey, config.Keys.RemoteIV)
	if err != nil {
		return nil, err
	}

	log.Debug("session ciphers warmed up")

	return &Session{
		writeCipher: writeCipher,
		readCipher:  readCipher,
		log:         log,
		nextConn:    conn,
	}, nil
}

// Read reads from the underlying conn and decrypts in place.
func (s *Session) Read(b []byte) (int, error) {
	// The conn read and the keystream draw stay under one lock so
	// concurrent readers cannot reorder ciphertext against keystream.
	s.readMutex.Lock()
	defer s.readMutex.Unlock()

	n, err := s.nextConn.Read(b)
	if n > 0 {
		s.readCipher.XORKeyStream(b[:n], b[:n])
		s.log.Tracef("decrypted %d bytes", n)
	}

	return n, err
}

// Write encrypts b and writes the ciphertext to the underlying conn.
// b itself is left untouched.
func (s *Session) Write(b []byte) (int, error) {
	// The keystream draw and the conn write stay under one lock so
	// concurrent writers cannot reorder ciphertext against keystream.
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	ks, err := s.writeCipher.Keystream(8 * len(b))
	if err != nil {
		return 0, err
	}

	out := make([]byte, len(b))
	xorBytes(out, b, ks)
	s.log.Tracef("encrypted %d bytes", len(b))

	return s.nextConn.Write(out)
}

// Close closes the underlying conn. The ciphers hold no resources
// beyond their register state, so there is nothing else to release.
func (s *Session) Close() error {
	return s.nextConn.Close()
}

// LocalAddr returns the local address of the underlying conn.
func (s *Session) LocalAddr() net.Addr { return s.nextConn.LocalAddr() }

// RemoteAddr returns the remote address of the underlying conn.
func (s *Session) RemoteAddr() net.Addr { return s.nextConn.RemoteAddr() }

// SetDeadline sets the read and write deadlines of the underlying conn.
func (s *Session) SetDeadline(t time.Time) error { return s.nextConn.SetDeadline(t) }

// SetReadDeadline sets the read deadline of the underlying conn.
func (s *Session) SetReadDeadline(t time.Time) error { return s.nextConn.SetReadDeadline(t) }

// SetWriteDeadline sets the write deadline of the underlying conn.
func (s *Session) SetWriteDeadline(t time.Time) error { return s.nextConn.SetWriteDeadline(t) }
