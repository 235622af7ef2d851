package grpc

import (
	"context"
	"errors"

	"github.com/avkit/extronctl/internal/domain/model"
	"github.com/avkit/extronctl/internal/usecases"
	"github.com/avkit/extronctl/internal/usecases/commands"
	"github.com/avkit/extronctl/internal/usecases/queries"
	extronv1 "github.com/avkit/extronctl/pkg/proto/extron/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type ControlHandler struct {
	extronv1.UnimplementedControlServiceServer
	app *usecases.Application
}

func NewControlHandler(app *usecases.Application) *ControlHandler {
	return &ControlHandler{app: app}
}

func (h *ControlHandler) ListDevices(ctx context.Context, _ *extronv1.ListDevicesRequest) (*extronv1.ListDevicesResponse, error) {
	devices, err := h.app.Queries.ListDevices.Execute(ctx, queries.ListDevicesQuery{})
	if err != nil {
		return nil, toGRPCError(err)
	}

	return &extronv1.ListDevicesResponse{
		Reply: toProtoDevices(devices),
	}, nil
}

func (h *ControlHandler) SelectInput(ctx context.Context, req *extronv1.SelectInputRequest) (*extronv1.SelectInputResponse, error) {
	if req.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	if req.Input == "" {
		return nil, status.Error(codes.InvalidArgument, "input is required")
	}

	cmd := commands.SelectInputCommand{
		Name:  req.Name,
		Input: req.Input,
	}

	if _, err := h.app.Commands.SelectInput.Handle(ctx, cmd); err != nil {
		return nil, toGRPCError(err)
	}

	return &extronv1.SelectInputResponse{}, nil
}

func (h *ControlHandler) Rescan(ctx context.Context, _ *extronv1.RescanRequest) (*extronv1.RescanResponse, error) {
	if _, err := h.app.Commands.Rescan.Handle(ctx, commands.RescanCommand{}); err != nil {
		return nil, toGRPCError(err)
	}

	return &extronv1.RescanResponse{}, nil
}

func (h *ControlHandler) StopServer(ctx context.Context, _ *extronv1.StopServerRequest) (*extronv1.StopServerResponse, error) {
	if _, err := h.app.Commands.StopServer.Handle(ctx, commands.StopServerCommand{}); err != nil {
		return nil, toGRPCError(err)
	}

	return &extronv1.StopServerResponse{}, nil
}

func toGRPCError(err error) error {
	switch {
	case errors.Is(err, model.ErrDeviceNotFound):
		return status.Error(codes.NotFound, "device not found")
	case errors.Is(err, model.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, "input not accepted by device")
	case errors.Is(err, model.ErrDeviceUnreachable):
		return status.Error(codes.Unavailable, "device unreachable or not acknowledging")
	case errors.Is(err, model.ErrDiscoveryFailed):
		return status.Error(codes.Unavailable, "device discovery failed")
	case errors.Is(err, model.ErrShutdownInProgress):
		return status.Error(codes.Unavailable, "server shutdown in progress")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
