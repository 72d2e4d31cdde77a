package gcpbigquery

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/elC0mpa/flow-doctor/model"
	flowservice "github.com/elC0mpa/flow-doctor/service"
)

// TableRef names a table holding one snapshot per row.
type TableRef struct {
	ProjectID string
	Dataset   string
	Table     string
}

type rowIterator interface {
	Next(dst interface{}) error
}

type queryRunner func(ctx context.Context, query string) (rowIterator, error)

type service struct {
	table    TableRef
	bqClient *bigquery.Client
	run      queryRunner
	identity flowservice.IdentityService
}

type BigQueryService interface {
	GetSnapshots(ctx context.Context) ([]model.RawSnapshot, error)
	GetSourceInfo(ctx context.Context) (*model.SourceInfo, error)
	Close() error
}
