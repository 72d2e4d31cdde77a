package awss3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/elC0mpa/flow-doctor/model"
	flowservice "github.com/elC0mpa/flow-doctor/service"
)

type getObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type service struct {
	client   getObjectAPI
	identity flowservice.IdentityService
	bucket   string
	key      string
}

type S3Service interface {
	GetSnapshots(ctx context.Context) ([]model.RawSnapshot, error)
	GetSourceInfo(ctx context.Context) (*model.SourceInfo, error)
}
