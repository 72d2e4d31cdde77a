package awssts

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/elC0mpa/flow-doctor/model"
)

type callerIdentityAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

type service struct {
	client callerIdentityAPI
}

// Principal is the identity the snapshot export is read with.
type Principal struct {
	AccountID string
	Partition string
	// Name is the ARN resource, such as "user/flow" or
	// "assumed-role/flow-reader/session".
	Name string
}

type STSService interface {
	GetPrincipal(ctx context.Context) (*Principal, error)
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}
