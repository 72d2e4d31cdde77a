package awssts

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/elC0mpa/flow-doctor/model"
	er "github.com/mcorbin/corbierror"
)

func NewService(awsconfig aws.Config) *service {
	return &service{
		client: sts.NewFromConfig(awsconfig),
	}
}

// GetPrincipal asks STS who is reading the export and splits the caller ARN.
func (s *service) GetPrincipal(ctx context.Context) (*Principal, error) {
	output, err := s.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, er.Newf("cannot identify the AWS account reading the snapshot export: %s", er.Unauthorized, true, err.Error())
	}

	parsed, err := arn.Parse(aws.ToString(output.Arn))
	if err != nil {
		return nil, fmt.Errorf("unexpected caller ARN %q: %w", aws.ToString(output.Arn), err)
	}

	accountID := aws.ToString(output.Account)
	if accountID == "" {
		accountID = parsed.AccountID
	}
	return &Principal{
		AccountID: accountID,
		Partition: parsed.Partition,
		Name:      parsed.Resource,
	}, nil
}

// GetAccountInfo implements service.IdentityService. Outside the commercial
// partition the name carries the partition, e.g. "aws-cn user/flow".
func (s *service) GetAccountInfo(ctx context.Context) (*model.AccountInfo, error) {
	principal, err := s.GetPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	name := principal.Name
	if principal.Partition != "" && principal.Partition != "aws" {
		name = principal.Partition + " " + name
	}
	return &model.AccountInfo{
		Provider:    "aws",
		AccountID:   principal.AccountID,
		AccountName: name,
	}, nil
}
