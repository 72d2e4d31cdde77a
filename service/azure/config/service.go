package azureconfig

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

func NewService(accountURL, subscriptionID string) (*service, error) {
	// DefaultAzureCredential tries, in order:
	// - environment variables (AZURE_CLIENT_ID, AZURE_TENANT_ID, AZURE_CLIENT_SECRET)
	// - workload and managed identity
	// - Azure CLI (az login)
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure credential: %w", err)
	}

	return &service{
		accountURL:     accountURL,
		subscriptionID: subscriptionID,
		credential:     credential,
	}, nil
}

func (s *service) GetCredential() *azidentity.DefaultAzureCredential {
	return s.credential
}

func (s *service) GetAccountURL() string {
	return s.accountURL
}

func (s *service) GetSubscriptionID() string {
	return s.subscriptionID
}
