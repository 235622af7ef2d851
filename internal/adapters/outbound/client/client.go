package client

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/avkit/extronctl/internal/config"
	"github.com/avkit/extronctl/internal/domain/model"
	extronv1 "github.com/avkit/extronctl/pkg/proto/extron/v1"
)

const metadataKeyRequestID = "request-id"

// ControlClient wraps the generated gRPC client with connection management
// and translation of transport errors back into domain errors.
type ControlClient struct {
	conn *grpc.ClientConn
	rpc  extronv1.ControlServiceClient
}

func New(cfg config.GRPCClient) (*ControlClient, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithChainUnaryInterceptor(
			requestIDInterceptor(),
			timeoutInterceptor(cfg.Timeout),
			retryInterceptor(cfg.MaxRetries, cfg.Backoff),
		),
	}

	conn, err := grpc.NewClient(cfg.Address, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating gRPC connection: %w", err)
	}

	return &ControlClient{
		conn: conn,
		rpc:  extronv1.NewControlServiceClient(conn),
	}, nil
}

func (c *ControlClient) Close() error {
	return c.conn.Close()
}

func (c *ControlClient) ListDevices(ctx context.Context) ([]model.Device, error) {
	resp, err := c.rpc.ListDevices(ctx, &extronv1.ListDevicesRequest{})
	if err != nil {
		return nil, toDomainError(err)
	}

	devices := make([]model.Device, 0, len(resp.GetReply()))
	for _, d := range resp.GetReply() {
		devices = append(devices, model.Device{Name: d.GetName(), Path: d.GetPath()})
	}

	return devices, nil
}

func (c *ControlClient) SelectInput(ctx context.Context, name, input string) error {
	_, err := c.rpc.SelectInput(ctx, &extronv1.SelectInputRequest{Name: name, Input: input})

	return toDomainError(err)
}

func (c *ControlClient) Rescan(ctx context.Context) error {
	_, err := c.rpc.Rescan(ctx, &extronv1.RescanRequest{})

	return toDomainError(err)
}

// StopServer tolerates the connection dropping mid-call: the server may tear
// down the transport before the reply makes it back.
func (c *ControlClient) StopServer(ctx context.Context) error {
	_, err := c.rpc.StopServer(ctx, &extronv1.StopServerRequest{})
	if err != nil {
		if st, ok := status.FromError(err); ok && st.Code() == codes.Unavailable {
			return nil
		}

		return toDomainError(err)
	}

	return nil
}

func toDomainError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.NotFound:
		return fmt.Errorf("%w: %s", model.ErrDeviceNotFound, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", model.ErrInvalidInput, st.Message())
	case codes.Unavailable:
		return fmt.Errorf("%w: %s", model.ErrDeviceUnreachable, st.Message())
	default:
		return fmt.Errorf("rpc failed: %s", st.Message())
	}
}

func requestIDInterceptor() grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		ctx = metadata.AppendToOutgoingContext(ctx, metadataKeyRequestID, uuid.New().String())

		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

func timeoutInterceptor(timeout time.Duration) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

func retryInterceptor(maxRetries uint, cfg config.Backoff) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		if maxRetries == 0 {
			return invoker(ctx, method, req, reply, cc, opts...)
		}

		expBackoff := backoff.NewExponentialBackOff()
		expBackoff.InitialInterval = cfg.BaseDelay
		expBackoff.Multiplier = cfg.Multiplier
		expBackoff.RandomizationFactor = cfg.Jitter
		expBackoff.MaxInterval = cfg.MaxDelay

		operation := func() (struct{}, error) {
			err := invoker(ctx, method, req, reply, cc, opts...)
			if err == nil {
				return struct{}{}, nil
			}

			if isRetryable(method, err) {
				return struct{}{}, err
			}

			return struct{}{}, backoff.Permanent(err)
		}

		_, err := backoff.Retry(
			ctx,
			operation,
			backoff.WithMaxTries(maxRetries+1),
			backoff.WithBackOff(expBackoff),
		)

		return err
	}
}

// isRetryable keeps mutating calls single-shot: retrying a switch command or a
// shutdown request could repeat a side effect the caller already observed.
func isRetryable(method string, err error) bool {
	switch method {
	case extronv1.ControlService_ListDevices_FullMethodName:
	default:
		return false
	}

	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.Unavailable, codes.ResourceExhausted, codes.Aborted:
		return true
	default:
		return false
	}
}
