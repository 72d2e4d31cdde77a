package azureblob

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/elC0mpa/flow-doctor/model"
	flowservice "github.com/elC0mpa/flow-doctor/service"
)

type downloadAPI interface {
	DownloadStream(ctx context.Context, containerName string, blobName string, o *azblob.DownloadStreamOptions) (azblob.DownloadStreamResponse, error)
}

type service struct {
	client     downloadAPI
	identity   flowservice.IdentityService
	accountURL string
	container  string
	blob       string
}

type BlobService interface {
	GetSnapshots(ctx context.Context) ([]model.RawSnapshot, error)
	GetSourceInfo(ctx context.Context) (*model.SourceInfo, error)
}
