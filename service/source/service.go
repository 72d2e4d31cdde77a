package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/elC0mpa/flow-doctor/model"
	flowservice "github.com/elC0mpa/flow-doctor/service"
	awsconfig "github.com/elC0mpa/flow-doctor/service/aws/config"
	awss3 "github.com/elC0mpa/flow-doctor/service/aws/s3"
	awssts "github.com/elC0mpa/flow-doctor/service/aws/sts"
	azureblob "github.com/elC0mpa/flow-doctor/service/azure/blob"
	azureconfig "github.com/elC0mpa/flow-doctor/service/azure/config"
	azureidentity "github.com/elC0mpa/flow-doctor/service/azure/identity"
	"github.com/elC0mpa/flow-doctor/service/file"
	gcpbigquery "github.com/elC0mpa/flow-doctor/service/gcp/bigquery"
	gcpconfig "github.com/elC0mpa/flow-doctor/service/gcp/config"
	gcpidentity "github.com/elC0mpa/flow-doctor/service/gcp/identity"
	er "github.com/mcorbin/corbierror"
)

func NewService(logger *slog.Logger, stdin io.Reader) *service {
	return &service{
		logger: logger,
		stdin:  stdin,
	}
}

// ParseLocation accepts a local path, "-" for stdin, or one of
// file://path, s3://bucket/key, bq://project.dataset.table and
// azblob://container/blob.
func ParseLocation(input string) (Location, error) {
	if input == "" {
		return Location{}, er.New("missing snapshot input", er.BadRequest, true)
	}
	if input == file.StdinPath || !strings.Contains(input, "://") {
		return Location{Scheme: SchemeFile, Path: input}, nil
	}

	parsed, err := url.Parse(input)
	if err != nil {
		return Location{}, er.Newf("invalid snapshot input %q: %s", er.BadRequest, true, input, err.Error())
	}

	location := Location{
		Scheme: strings.ToLower(parsed.Scheme),
		Host:   parsed.Host,
		Path:   strings.TrimPrefix(parsed.Path, "/"),
	}

	switch location.Scheme {
	case SchemeFile:
		location.Path = parsed.Host + parsed.Path
		location.Host = ""
		if location.Path == "" {
			return Location{}, er.Newf("invalid snapshot input %q: missing path", er.BadRequest, true, input)
		}
	case SchemeS3, SchemeAzBlob:
		if location.Host == "" || location.Path == "" {
			return Location{}, er.Newf("invalid snapshot input %q: expected %s://<bucket>/<key>", er.BadRequest, true, input, location.Scheme)
		}
	case SchemeBQ:
		if location.Host == "" || location.Path != "" {
			return Location{}, er.Newf("invalid snapshot input %q: expected bq://project.dataset.table", er.BadRequest, true, input)
		}
	default:
		return Location{}, er.Newf("unsupported snapshot input scheme %q", er.BadRequest, true, parsed.Scheme)
	}
	return location, nil
}

// Resolve builds the snapshot source for flags.Input. A returned source that
// implements io.Closer must be closed by the caller.
func (s *service) Resolve(ctx context.Context, flags model.Flags) (flowservice.SnapshotSource, error) {
	location, err := ParseLocation(flags.Input)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("resolving snapshot source", "scheme", location.Scheme, "host", location.Host, "path", location.Path)

	switch location.Scheme {
	case SchemeS3:
		return s.resolveS3(ctx, flags, location)
	case SchemeBQ:
		return s.resolveBigQuery(ctx, flags, location)
	case SchemeAzBlob:
		return s.resolveAzureBlob(flags, location)
	default:
		return file.NewService(location.Path, s.stdin), nil
	}
}

func (s *service) resolveS3(ctx context.Context, flags model.Flags, location Location) (flowservice.SnapshotSource, error) {
	cfgService := awsconfig.NewService()
	awsCfg, err := cfgService.GetAWSCfg(ctx, flags.Region, flags.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	stsService := awssts.NewService(awsCfg)
	return awss3.NewService(awsCfg, stsService, location.Host, location.Path), nil
}

func (s *service) resolveBigQuery(ctx context.Context, flags model.Flags, location Location) (flowservice.SnapshotSource, error) {
	table, err := gcpbigquery.ParseTableRef(location.Host)
	if err != nil {
		return nil, err
	}

	cfgService := gcpconfig.NewService(flags.Project)
	creds, err := cfgService.GetCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find GCP credentials: %w", err)
	}

	// --gcp-project bills the query job; the table may live elsewhere.
	billingProject, err := cfgService.GetProjectID(ctx)
	if err != nil {
		return nil, err
	}
	if billingProject == "" {
		billingProject = table.ProjectID
	}

	identityService, err := gcpidentity.NewService(ctx, billingProject, creds)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCP identity client: %w", err)
	}

	bqService, err := gcpbigquery.NewService(ctx, billingProject, table, creds, identityService)
	if err != nil {
		return nil, err
	}
	return bqService, nil
}

func (s *service) resolveAzureBlob(flags model.Flags, location Location) (flowservice.SnapshotSource, error) {
	if flags.AccountURL == "" {
		return nil, er.New("azblob input requires --azure-account-url", er.BadRequest, true)
	}

	cfgService, err := azureconfig.NewService(flags.AccountURL, flags.Subscription)
	if err != nil {
		return nil, err
	}

	var identity flowservice.IdentityService
	if subscriptionID := cfgService.GetSubscriptionID(); subscriptionID != "" {
		identityService, err := azureidentity.NewService(subscriptionID, cfgService.GetCredential())
		if err != nil {
			return nil, err
		}
		identity = identityService
	}

	blobService, err := azureblob.NewService(cfgService.GetAccountURL(), location.Host, location.Path, cfgService.GetCredential(), identity)
	if err != nil {
		return nil, err
	}
	return blobService, nil
}
