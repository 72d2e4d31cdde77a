package service

import (
	"context"

	"github.com/elC0mpa/flow-doctor/model"
)

// IdentityService provides cloud account/project identity information
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// SnapshotSource reads a lookback snapshot set from one location
type SnapshotSource interface {
	GetSnapshots(ctx context.Context) ([]model.RawSnapshot, error)
	GetSourceInfo(ctx context.Context) (*model.SourceInfo, error)
}
