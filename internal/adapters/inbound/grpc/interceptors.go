package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/avkit/extronctl/internal/config"
	"github.com/avkit/extronctl/pkg/logger"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	MetadataKeyRequestID = "request-id"

	healthServiceName = "grpc.health"
)

func ContextExtractorInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		var requestID string

		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if requestIDs := md.Get(MetadataKeyRequestID); len(requestIDs) > 0 {
				requestID = requestIDs[0]
			}
		}

		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx = context.WithValue(ctx, logger.ContextKeyRequestID, requestID)

		return handler(ctx, req)
	}
}

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(logger.ContextKeyRequestID).(string); ok {
		return id
	}

	return ""
}

func AccessLogInterceptor(log logger.Logger, cfg config.AccessLog) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if !cfg.Enabled {
			return handler(ctx, req)
		}

		if !cfg.LogHealthChecks && isHealthCheck(info.FullMethod) {
			return handler(ctx, req)
		}

		start := time.Now()
		resp, err := handler(ctx, req)
		duration := time.Since(start)

		logEvent := log.Info().
			Str("method", info.FullMethod).
			Str("request_id", GetRequestID(ctx)).
			Dur("duration", duration)

		if err != nil {
			st, _ := status.FromError(err)
			logEvent.Str("grpc_code", st.Code().String()).
				Str("error", st.Message()).
				Msg("gRPC request failed")
		} else {
			logEvent.Msg("gRPC request completed")
		}

		return resp, err
	}
}

func isHealthCheck(fullMethod string) bool {
	return strings.Contains(fullMethod, healthServiceName)
}
