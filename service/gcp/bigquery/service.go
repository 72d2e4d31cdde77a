package gcpbigquery

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/elC0mpa/flow-doctor/model"
	flowservice "github.com/elC0mpa/flow-doctor/service"
	er "github.com/mcorbin/corbierror"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ParseTableRef parses "project.dataset.table".
func ParseTableRef(value string) (TableRef, error) {
	parts := strings.Split(value, ".")
	if len(parts) != 3 {
		return TableRef{}, er.Newf("invalid BigQuery table %q, expected project.dataset.table", er.BadRequest, true, value)
	}
	for _, part := range parts {
		if !identifierPattern.MatchString(part) {
			return TableRef{}, er.Newf("invalid BigQuery table %q, unexpected identifier %q", er.BadRequest, true, value, part)
		}
	}
	return TableRef{
		ProjectID: parts[0],
		Dataset:   parts[1],
		Table:     parts[2],
	}, nil
}

func (t TableRef) String() string {
	return fmt.Sprintf("%s.%s.%s", t.ProjectID, t.Dataset, t.Table)
}

// NewService queries table with jobs billed to billingProject.
func NewService(ctx context.Context, billingProject string, table TableRef, creds *google.Credentials, identity flowservice.IdentityService) (*service, error) {
	bqClient, err := bigquery.NewClient(ctx, billingProject, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create BigQuery client: %w", err)
	}

	return &service{
		table:    table,
		bqClient: bqClient,
		run: func(ctx context.Context, query string) (rowIterator, error) {
			return bqClient.Query(query).Read(ctx)
		},
		identity: identity,
	}, nil
}

// Close closes the BigQuery client
func (s *service) Close() error {
	if s.bqClient == nil {
		return nil
	}
	return s.bqClient.Close()
}

func (s *service) query() string {
	return fmt.Sprintf(`
		SELECT
			ObjectID,
			ScheduleState,
			_ValidFrom,
			_ValidTo
		FROM `+"`%s`"+`
		ORDER BY _ValidFrom
	`, s.table)
}

// GetSnapshots implements service.SnapshotSource
func (s *service) GetSnapshots(ctx context.Context) ([]model.RawSnapshot, error) {
	it, err := s.run(ctx, s.query())
	if err != nil {
		return nil, fmt.Errorf("failed to execute BigQuery query: %w", err)
	}

	var snapshots []model.RawSnapshot
	for {
		var row map[string]bigquery.Value

		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read BigQuery row: %w", err)
		}

		snapshots = append(snapshots, rowToSnapshot(row))
	}

	return snapshots, nil
}

// GetSourceInfo implements service.SnapshotSource
func (s *service) GetSourceInfo(ctx context.Context) (*model.SourceInfo, error) {
	info := model.SourceInfo{
		Provider: "gcp",
		Location: "bq://" + s.table.String(),
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

// rowToSnapshot renders every column as the text the JSON export would carry,
// validation happens later on the raw snapshot.
func rowToSnapshot(row map[string]bigquery.Value) model.RawSnapshot {
	return model.RawSnapshot{
		ObjectID:      model.SnapshotID(valueString(row["ObjectID"])),
		ScheduleState: valueString(row["ScheduleState"]),
		ValidFrom:     valueString(row["_ValidFrom"]),
		ValidTo:       valueString(row["_ValidTo"]),
	}
}

func valueString(value bigquery.Value) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(v)
	}
}
