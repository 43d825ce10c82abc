package model

import "context"

// ControllerReader provides the read half of the controller contract.
type ControllerReader interface {
	Status(ctx context.Context) (StatusSnapshot, error)
	Tokens(ctx context.Context) ([]Token, error)
	Trades(ctx context.Context) ([]Trade, error)
}

// ControllerWriter provides the mutating half of the controller contract.
type ControllerWriter interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	SetNetwork(ctx context.Context, network string) error
}

// ControllerAPI is the full contract the console holds against the remote
// controller (HTTP client in production, a fake in tests).
type ControllerAPI interface {
	ControllerReader
	ControllerWriter
}
