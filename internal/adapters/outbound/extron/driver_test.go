package extron

import (
	"net"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avkit/extronctl/internal/config"
	"github.com/avkit/extronctl/internal/domain/model"
	"github.com/avkit/extronctl/pkg/logger"
)

func newTestDriver(breakerEnabled bool, threshold uint) *Driver {
	return NewDriver(
		config.Discovery{QueryTimeout: time.Second},
		config.Serial{DialTimeout: time.Second, ReadTimeout: time.Second},
		config.Breaker{Enabled: breakerEnabled, FailureThreshold: threshold, OpenTimeout: time.Minute},
		logger.NewTestLogger(),
	)
}

// startFakeSwitcher serves one request per connection: it reads a command
// and answers with whatever reply returns. It stands in for a unit reachable
// over an IP control port.
func startFakeSwitcher(t *testing.T, reply func(cmd string) string) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	t.Cleanup(func() {
		ln.Close()
	})

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}

			go func(c net.Conn) {
				defer c.Close()

				buf := make([]byte, 64)

				n, err := c.Read(buf)
				if err != nil {
					return
				}

				if resp := reply(string(buf[:n])); resp != "" {
					c.Write([]byte(resp))
				}
			}(conn)
		}
	}()

	return tcpPathPrefix + ln.Addr().String()
}

func TestDriverSwitchInput(t *testing.T) {
	t.Parallel()

	path := startFakeSwitcher(t, func(cmd string) string {
		if cmd == "2!" {
			return "In2All\r\n"
		}

		return "E01\r\n"
	})

	driver := newTestDriver(false, 0)

	require.NoError(t, driver.SwitchInput(t.Context(), path, "2"))
}

func TestDriverSwitchInputRejected(t *testing.T) {
	t.Parallel()

	path := startFakeSwitcher(t, func(string) string {
		return "E01\r\n"
	})

	driver := newTestDriver(true, 2)

	// A rejected input comes from a live unit, so it must not trip the
	// breaker no matter how often it happens.
	for i := 0; i < 5; i++ {
		err := driver.SwitchInput(t.Context(), path, "99")
		require.ErrorIs(t, err, model.ErrInvalidInput)
	}
}

func TestDriverSwitchInputUnexpectedAnswer(t *testing.T) {
	t.Parallel()

	path := startFakeSwitcher(t, func(string) string {
		return "In3All\r\n"
	})

	driver := newTestDriver(false, 0)

	err := driver.SwitchInput(t.Context(), path, "2")
	require.ErrorIs(t, err, model.ErrDeviceUnreachable)
}

func TestDriverSwitchInputBreakerStopsHammeringDeadLink(t *testing.T) {
	t.Parallel()

	var connections atomic.Int32

	path := startFakeSwitcher(t, func(string) string {
		connections.Add(1)

		return "NOPE\r\n"
	})

	driver := newTestDriver(true, 2)

	for i := 0; i < 5; i++ {
		err := driver.SwitchInput(t.Context(), path, "2")
		require.ErrorIs(t, err, model.ErrDeviceUnreachable)
	}

	require.Equal(t, int32(2), connections.Load())
}

func TestDriverSwitchInputDialFailure(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	path := tcpPathPrefix + ln.Addr().String()
	require.NoError(t, ln.Close())

	driver := newTestDriver(false, 0)

	err = driver.SwitchInput(t.Context(), path, "2")
	require.ErrorIs(t, err, model.ErrDeviceUnreachable)
}

func TestDriverDiscoverSkipsPortsThatDoNotAnswer(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ttyUSB0"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ttyUSB1"), nil, 0o600))

	driver := NewDriver(
		config.Discovery{
			PortGlobs:    []string{filepath.Join(dir, "ttyUSB*")},
			QueryTimeout: 100 * time.Millisecond,
		},
		config.Serial{DialTimeout: 100 * time.Millisecond, ReadTimeout: 100 * time.Millisecond},
		config.Breaker{},
		logger.NewTestLogger(),
	)

	devices, err := driver.Discover(t.Context())
	require.NoError(t, err)
	require.Empty(t, devices)
}

func TestDriverDiscoverBadGlob(t *testing.T) {
	t.Parallel()

	driver := NewDriver(
		config.Discovery{PortGlobs: []string{"["}},
		config.Serial{},
		config.Breaker{},
		logger.NewTestLogger(),
	)

	_, err := driver.Discover(t.Context())
	require.ErrorIs(t, err, model.ErrDiscoveryFailed)
}

func TestDriverDiscoverNoMatches(t *testing.T) {
	t.Parallel()

	driver := NewDriver(
		config.Discovery{PortGlobs: []string{filepath.Join(t.TempDir(), "nothing*")}},
		config.Serial{},
		config.Breaker{},
		logger.NewTestLogger(),
	)

	devices, err := driver.Discover(t.Context())
	require.NoError(t, err)
	require.Empty(t, devices)
}
