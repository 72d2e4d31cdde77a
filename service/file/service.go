package file

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/elC0mpa/flow-doctor/model"
	"github.com/elC0mpa/flow-doctor/service/snapshot"
)

func NewService(path string, stdin io.Reader) *service {
	if stdin == nil {
		stdin = os.Stdin
	}
	return &service{
		path:  path,
		stdin: stdin,
	}
}

// GetSnapshots implements service.SnapshotSource
func (s *service) GetSnapshots(ctx context.Context) ([]model.RawSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.path == StdinPath {
		snapshots, err := snapshot.Decode(s.stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read snapshots from stdin: %w", err)
		}
		return snapshots, nil
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer f.Close()

	snapshots, err := snapshot.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshots from %s: %w", s.path, err)
	}
	return snapshots, nil
}

// GetSourceInfo implements service.SnapshotSource
func (s *service) GetSourceInfo(_ context.Context) (*model.SourceInfo, error) {
	location := s.path
	if s.path == StdinPath {
		location = "stdin"
	}
	return &model.SourceInfo{
		Provider: "file",
		Location: location,
	}, nil
}
