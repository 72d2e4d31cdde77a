package azureblob

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/elC0mpa/flow-doctor/model"
	flowservice "github.com/elC0mpa/flow-doctor/service"
	"github.com/elC0mpa/flow-doctor/service/snapshot"
)

func NewService(accountURL, container, blob string, credential azcore.TokenCredential, identity flowservice.IdentityService) (*service, error) {
	client, err := azblob.NewClient(accountURL, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client: %w", err)
	}

	return &service{
		client:     client,
		identity:   identity,
		accountURL: accountURL,
		container:  container,
		blob:       blob,
	}, nil
}

// GetSnapshots implements service.SnapshotSource
func (s *service) GetSnapshots(ctx context.Context) ([]model.RawSnapshot, error) {
	resp, err := s.client.DownloadStream(ctx, s.container, s.blob, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", s.location(), err)
	}
	defer resp.Body.Close()

	snapshots, err := snapshot.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshots from %s: %w", s.location(), err)
	}
	return snapshots, nil
}

// GetSourceInfo implements service.SnapshotSource
func (s *service) GetSourceInfo(ctx context.Context) (*model.SourceInfo, error) {
	info := model.SourceInfo{
		Provider:  "azure",
		Location:  s.location(),
		AccountID: s.accountURL,
	}
	if s.identity == nil {
		return &info, nil
	}

	account, err := s.identity.GetAccountInfo(ctx)
	if err != nil {
		return nil, err
	}
	info = info.WithAccount(account)
	return &info, nil
}

func (s *service) location() string {
	return fmt.Sprintf("azblob://%s/%s", s.container, s.blob)
}
