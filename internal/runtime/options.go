package runtime

type ServiceOption func(*ServiceCtx)

func WithWaitingForServer() ServiceOption {
	return func(c *ServiceCtx) {
		c.serverReady = make(chan struct{}, 1)
	}
}

// WithListenAddress overrides the configured gRPC listen address.
func WithListenAddress(host string, port int) ServiceOption {
	return func(c *ServiceCtx) {
		c.listenHost = host
		c.listenPort = port
	}
}
