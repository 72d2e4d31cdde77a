package awss3

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/elC0mpa/flow-doctor/model"
	flowservice "github.com/elC0mpa/flow-doctor/service"
	"github.com/elC0mpa/flow-doctor/service/snapshot"
)

// NewService reads the snapshot export stored at s3://bucket/key. identity may
// be nil, the source info then carries no account.
func NewService(awsconfig aws.Config, identity flowservice.IdentityService, bucket, key string) *service {
	client := s3.NewFromConfig(awsconfig)
	return &service{
		client:   client,
		identity: identity,
		bucket:   bucket,
		key:      key,
	}
}

// GetSnapshots implements service.SnapshotSource
func (s *service) GetSnapshots(ctx context.Context) ([]model.RawSnapshot, error) {
	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer output.Body.Close()

	snapshots, err := snapshot.Decode(output.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshots from s3://%s/%s: %w", s.bucket, s.key, err)
	}
	return snapshots, nil
}

// GetSourceInfo implements service.SnapshotSource
func (s *service) GetSourceInfo(ctx context.Context) (*model.SourceInfo, error) {
	info := model.SourceInfo{
		Provider: "aws",
		Location: fmt.Sprintf("s3://%s/%s", s.bucket, s.key),
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
