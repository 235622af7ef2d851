package root

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServeOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		listen    string
		wantOpts  int
		wantError bool
	}{
		{
			name:     "empty keeps configured address",
			listen:   "",
			wantOpts: 0,
		},
		{
			name:     "host and port",
			listen:   "127.0.0.1:15000",
			wantOpts: 1,
		},
		{
			name:     "wildcard host",
			listen:   ":14000",
			wantOpts: 1,
		},
		{
			name:      "missing port",
			listen:    "127.0.0.1",
			wantError: true,
		},
		{
			name:      "non-numeric port",
			listen:    "127.0.0.1:grpc",
			wantError: true,
		},
		{
			name:      "negative port",
			listen:    "127.0.0.1:-1",
			wantError: true,
		},
		{
			name:      "port above range",
			listen:    "127.0.0.1:70000",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts, err := serveOptions(tt.listen)
			if tt.wantError {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.Len(t, opts, tt.wantOpts)
		})
	}
}
