package gcpconfig

import (
	"context"

	"cloud.google.com/go/bigquery"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/cloudresourcemanager/v1"
)

func NewService(projectID string) *service {
	return &service{
		projectID: projectID,
	}
}

func (s *service) GetCredentials(ctx context.Context) (*google.Credentials, error) {
	// Application Default Credentials:
	// - GOOGLE_APPLICATION_CREDENTIALS environment variable
	// - gcloud auth application-default login
	// - attached service account on GCE/Cloud Run
	return google.FindDefaultCredentials(ctx,
		bigquery.Scope,
		cloudresourcemanager.CloudPlatformReadOnlyScope,
	)
}

// GetProjectID returns the configured project, or the one attached to the
// default credentials when none was given.
func (s *service) GetProjectID(ctx context.Context) (string, error) {
	if s.projectID != "" {
		return s.projectID, nil
	}
	creds, err := s.GetCredentials(ctx)
	if err != nil {
		return "", err
	}
	return creds.ProjectID, nil
}
