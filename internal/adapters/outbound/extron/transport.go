package extron

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"time"
)

// tcpPathPrefix marks a device path that is an IP-control address rather
// than a tty, e.g. "tcp:matrix.local:23".
const tcpPathPrefix = "tcp:"

// port is the device link. Both net.Conn and *os.File satisfy it; tty fds
// are pollable on Linux so deadlines work on files too.
type port interface {
	io.ReadWriteCloser
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
}

func openPort(path string, dialTimeout time.Duration) (port, error) {
	if strings.HasPrefix(path, tcpPathPrefix) {
		conn, err := net.DialTimeout("tcp", strings.TrimPrefix(path, tcpPathPrefix), dialTimeout)
		if err != nil {
			return nil, fmt.Errorf("dialing %s: %w", path, err)
		}

		return conn, nil
	}

	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	return file, nil
}

// exchange writes a command and reads one reply line, bounded by timeout.
func exchange(p port, cmd []byte, timeout time.Duration) (string, error) {
	deadline := time.Now().Add(timeout)

	if err := p.SetWriteDeadline(deadline); err != nil {
		return "", err
	}

	if _, err := p.Write(cmd); err != nil {
		return "", err
	}

	if err := p.SetReadDeadline(deadline); err != nil {
		return "", err
	}

	line, err := bufio.NewReader(p).ReadString('\n')
	if err != nil && len(line) == 0 {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
