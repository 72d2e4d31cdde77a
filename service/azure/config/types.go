package azureconfig

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

type service struct {
	accountURL     string
	subscriptionID string
	credential     *azidentity.DefaultAzureCredential
}

type ConfigService interface {
	GetCredential() *azidentity.DefaultAzureCredential
	GetAccountURL() string
	GetSubscriptionID() string
}
