package awss3

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/elC0mpa/flow-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	body  string
	err   error
	input *s3.GetObjectInput
}

func (f *fakeS3) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

type fakeIdentity struct {
	info *model.AccountInfo
	err  error
}

func (f *fakeIdentity) GetAccountInfo(_ context.Context) (*model.AccountInfo, error) {
	return f.info, f.err
}

func TestGetSnapshots(t *testing.T) {
	client := &fakeS3{body: `{"Results": [{"ObjectID": "7", "ScheduleState": "Accepted", "_ValidFrom": "2012-02-01T00:00:00.000Z", "_ValidTo": "9999-01-01T00:00:00.000Z"}]}`}
	svc := &service{client: client, bucket: "exports", key: "lookback/feb.json"}

	snapshots, err := svc.GetSnapshots(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, "Accepted", snapshots[0].ScheduleState)
	assert.Equal(t, "exports", aws.ToString(client.input.Bucket))
	assert.Equal(t, "lookback/feb.json", aws.ToString(client.input.Key))
}

func TestGetSnapshotsError(t *testing.T) {
	svc := &service{client: &fakeS3{err: errors.New("NoSuchKey")}, bucket: "exports", key: "missing.json"}

	_, err := svc.GetSnapshots(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3://exports/missing.json")
}

func TestGetSourceInfo(t *testing.T) {
	cases := []struct {
		name     string
		identity *fakeIdentity
		expected *model.SourceInfo
		wantErr  bool
	}{
		{
			name:     "without identity",
			expected: &model.SourceInfo{Provider: "aws", Location: "s3://exports/feb.json"},
		},
		{
			name:     "with identity",
			identity: &fakeIdentity{info: &model.AccountInfo{Provider: "aws", AccountID: "123456789012", AccountName: "user/flow"}},
			expected: &model.SourceInfo{Provider: "aws", Location: "s3://exports/feb.json", AccountID: "123456789012", AccountName: "user/flow"},
		},
		{
			name:     "identity failure",
			identity: &fakeIdentity{err: errors.New("expired token")},
			wantErr:  true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc := &service{bucket: "exports", key: "feb.json"}
			if c.identity != nil {
				svc.identity = c.identity
			}

			info, err := svc.GetSourceInfo(context.Background())
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.expected, info)
		})
	}
}
