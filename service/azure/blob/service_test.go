package azureblob

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/elC0mpa/flow-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDownloader struct {
	body      string
	err       error
	container string
	blob      string
}

func (f *fakeDownloader) DownloadStream(_ context.Context, containerName string, blobName string, _ *azblob.DownloadStreamOptions) (azblob.DownloadStreamResponse, error) {
	f.container = containerName
	f.blob = blobName
	if f.err != nil {
		return azblob.DownloadStreamResponse{}, f.err
	}
	return azblob.DownloadStreamResponse{
		DownloadResponse: blob.DownloadResponse{Body: io.NopCloser(strings.NewReader(f.body))},
	}, nil
}

type fakeIdentity struct {
	info *model.AccountInfo
}

func (f *fakeIdentity) GetAccountInfo(_ context.Context) (*model.AccountInfo, error) {
	return f.info, nil
}

func TestGetSnapshots(t *testing.T) {
	client := &fakeDownloader{body: `[{"ObjectID": 12, "ScheduleState": "In-Progress", "_ValidFrom": "2012-02-06T09:00:00.000Z", "_ValidTo": "2012-02-06T17:00:00.000Z"}]`}
	svc := &service{client: client, container: "lookback", blob: "2012/feb.json"}

	snapshots, err := svc.GetSnapshots(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, "12", string(snapshots[0].ObjectID))
	assert.Equal(t, "lookback", client.container)
	assert.Equal(t, "2012/feb.json", client.blob)
}

func TestGetSnapshotsError(t *testing.T) {
	svc := &service{client: &fakeDownloader{err: errors.New("BlobNotFound")}, container: "lookback", blob: "missing.json"}

	_, err := svc.GetSnapshots(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "azblob://lookback/missing.json")
}

func TestGetSourceInfo(t *testing.T) {
	svc := &service{
		accountURL: "https://flowmetrics.blob.core.windows.net/",
		container:  "lookback",
		blob:       "feb.json",
		identity:   &fakeIdentity{info: &model.AccountInfo{Provider: "azure", AccountID: "0000-1111", AccountName: "Delivery Metrics"}},
	}

	info, err := svc.GetSourceInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &model.SourceInfo{
		Provider:    "azure",
		Location:    "azblob://lookback/feb.json",
		AccountID:   "0000-1111",
		AccountName: "Delivery Metrics",
	}, info)
}
