package azureidentity

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/elC0mpa/flow-doctor/model"
	er "github.com/mcorbin/corbierror"
)

// NewService labels blob sources with the subscription that owns the storage
// account.
func NewService(subscriptionID string, credential azcore.TokenCredential) (*service, error) {
	client, err := armsubscriptions.NewClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriptions client: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		client:         client,
	}, nil
}

// GetAccountInfo implements service.IdentityService. The name is the
// subscription display name, suffixed with its state unless it is enabled.
func (s *service) GetAccountInfo(ctx context.Context) (*model.AccountInfo, error) {
	resp, err := s.client.Get(ctx, s.subscriptionID, nil)
	if err != nil {
		return nil, er.Newf("cannot read subscription %s owning the snapshot export: %s", er.Forbidden, true, s.subscriptionID, err.Error())
	}
	subscription := resp.Subscription

	accountID := s.subscriptionID
	if subscription.SubscriptionID != nil {
		accountID = *subscription.SubscriptionID
	}

	name := accountID
	if subscription.DisplayName != nil && *subscription.DisplayName != "" {
		name = *subscription.DisplayName
	}
	if subscription.State != nil && *subscription.State != armsubscriptions.SubscriptionStateEnabled {
		name = fmt.Sprintf("%s (%s)", name, *subscription.State)
	}

	return &model.AccountInfo{
		Provider:    "azure",
		AccountID:   accountID,
		AccountName: name,
	}, nil
}
