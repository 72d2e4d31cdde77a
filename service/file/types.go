package file

import (
	"context"
	"io"

	"github.com/elC0mpa/flow-doctor/model"
)

// StdinPath reads the snapshots from standard input.
const StdinPath = "-"

type service struct {
	path  string
	stdin io.Reader
}

type FileService interface {
	GetSnapshots(ctx context.Context) ([]model.RawSnapshot, error)
	GetSourceInfo(ctx context.Context) (*model.SourceInfo, error)
}
