package config

import "time"

var (
	ServiceVersion string
	CommitSHA      string
)

type (
	ServiceConfig struct {
		App        App        `json:"app"`
		GRPCServer GRPCServer `json:"grpc_server"`
		Discovery  Discovery  `json:"discovery"`
		Serial     Serial     `json:"serial"`
		GRPCClient GRPCClient `json:"grpc_client"`
		Breaker    Breaker    `json:"breaker"`
		Logging    Logging    `json:"logging"`
		Telemetry  Telemetry  `json:"telemetry"`
	}

	App struct {
		ServiceName    string `envconfig:"APP_SERVICE_NAME" default:"extronctl" json:"service_name"`
		ServiceVersion string `json:"service_version"`
		CommitSHA      string `json:"commit_sha,omitempty"`
	}

	GRPCServer struct {
		Host            string        `envconfig:"GRPC_SERVER_HOST" default:"0.0.0.0" json:"host"`
		Port            uint          `envconfig:"GRPC_SERVER_PORT" default:"14000" json:"port"`
		ShutdownTimeout time.Duration `envconfig:"GRPC_SHUTDOWN_TIMEOUT" default:"30s" json:"shutdown_timeout"`
		DrainTimeout    time.Duration `envconfig:"GRPC_DRAIN_TIMEOUT" default:"10s" json:"drain_timeout"`
	}

	// Discovery controls how attached switchers are enumerated. The globs
	// match the stable udev symlinks the units appear under.
	Discovery struct {
		PortGlobs    []string      `envconfig:"DISCOVERY_PORT_GLOBS" default:"/dev/serial/by-id/*Extron*" json:"port_globs"`
		QueryTimeout time.Duration `envconfig:"DISCOVERY_QUERY_TIMEOUT" default:"2s" json:"query_timeout"`
	}

	Serial struct {
		DialTimeout time.Duration `envconfig:"SERIAL_DIAL_TIMEOUT" default:"2s" json:"dial_timeout"`
		ReadTimeout time.Duration `envconfig:"SERIAL_READ_TIMEOUT" default:"2s" json:"read_timeout"`
	}

	// GRPCClient configures outbound connections made by the command-line
	// subcommands that talk to a remote server.
	GRPCClient struct {
		Address    string        `envconfig:"GRPC_CLIENT_ADDRESS" default:"127.0.0.1:14000" json:"address"`
		Timeout    time.Duration `envconfig:"GRPC_CLIENT_TIMEOUT" default:"10s" json:"timeout"`
		MaxRetries uint          `envconfig:"GRPC_CLIENT_MAX_RETRIES" default:"2" json:"max_retries"`
		Backoff    Backoff       `json:"backoff"`
	}

	Backoff struct {
		BaseDelay  time.Duration `envconfig:"GRPC_CLIENT_BACKOFF_BASE_DELAY" default:"100ms" json:"base_delay"`
		MaxDelay   time.Duration `envconfig:"GRPC_CLIENT_BACKOFF_MAX_DELAY" default:"2s" json:"max_delay"`
		Multiplier float64       `envconfig:"GRPC_CLIENT_BACKOFF_MULTIPLIER" default:"1.6" json:"multiplier"`
		Jitter     float64       `envconfig:"GRPC_CLIENT_BACKOFF_JITTER" default:"0.2" json:"jitter"`
	}

	Breaker struct {
		Enabled          bool          `envconfig:"BREAKER_ENABLED" default:"true" json:"enabled"`
		FailureThreshold uint          `envconfig:"BREAKER_FAILURE_THRESHOLD" default:"3" json:"failure_threshold"`
		OpenTimeout      time.Duration `envconfig:"BREAKER_OPEN_TIMEOUT" default:"30s" json:"open_timeout"`
	}

	Logging struct {
		Level     string    `envconfig:"LOG_LEVEL" default:"info" json:"level"`
		Format    string    `envconfig:"LOG_FORMAT" default:"json" json:"format"`
		AccessLog AccessLog `json:"access_log"`
	}

	AccessLog struct {
		Enabled         bool `envconfig:"ACCESS_LOG_ENABLED" default:"true" json:"enabled"`
		LogHealthChecks bool `envconfig:"ACCESS_LOG_HEALTH_CHECKS" default:"false" json:"log_health_checks"`
	}

	Telemetry struct {
		OTLPEndpoint   string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"" json:"otlp_endpoint"`
		ServiceName    string `envconfig:"OTEL_SERVICE_NAME" default:"extronctl" json:"service_name"`
		ServiceVersion string `envconfig:"OTEL_SERVICE_VERSION" default:"1.0.0" json:"service_version"`
	}
)
