package source

import (
	"context"
	"io"
	"log/slog"

	"github.com/elC0mpa/flow-doctor/model"
	flowservice "github.com/elC0mpa/flow-doctor/service"
)

const (
	SchemeFile   = "file"
	SchemeS3     = "s3"
	SchemeBQ     = "bq"
	SchemeAzBlob = "azblob"
)

// Location is a parsed --input value. Host is the bucket, the container or
// the BigQuery table reference depending on the scheme.
type Location struct {
	Scheme string
	Host   string
	Path   string
}

type service struct {
	logger *slog.Logger
	stdin  io.Reader
}

type SourceService interface {
	Resolve(ctx context.Context, flags model.Flags) (flowservice.SnapshotSource, error)
}
