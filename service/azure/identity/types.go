package azureidentity

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/elC0mpa/flow-doctor/model"
)

type subscriptionsAPI interface {
	Get(ctx context.Context, subscriptionID string, options *armsubscriptions.ClientGetOptions) (armsubscriptions.ClientGetResponse, error)
}

type service struct {
	subscriptionID string
	client         subscriptionsAPI
}

type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}
