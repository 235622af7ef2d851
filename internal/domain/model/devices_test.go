package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avkit/extronctl/internal/domain/model"
)

func TestNewDevice(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		devName  string
		path     string
		expected model.Device
	}{
		{
			name:     "plain name",
			devName:  "matrix-a",
			path:     "/dev/ttyUSB0",
			expected: model.Device{Name: "matrix-a", Path: "/dev/ttyUSB0"},
		},
		{
			name:     "name reported with surrounding whitespace",
			devName:  "  matrix-a \r",
			path:     "/dev/ttyUSB0",
			expected: model.Device{Name: "matrix-a", Path: "/dev/ttyUSB0"},
		},
		{
			name:     "tcp control path",
			devName:  "lobby",
			path:     "tcp:matrix.local:23",
			expected: model.Device{Name: "lobby", Path: "tcp:matrix.local:23"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, model.NewDevice(tc.devName, tc.path))
		})
	}
}

func TestDeviceIsZero(t *testing.T) {
	t.Parallel()

	require.True(t, model.Device{}.IsZero())
	require.False(t, model.NewDevice("matrix-a", "/dev/ttyUSB0").IsZero())
	require.False(t, model.Device{Path: "/dev/ttyUSB0"}.IsZero())
}
