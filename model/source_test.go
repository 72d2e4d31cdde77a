package model_test

import (
	"testing"

	"github.com/elC0mpa/flow-doctor/model"
	"github.com/stretchr/testify/assert"
)

func TestSourceInfoWithAccount(t *testing.T) {
	source := model.SourceInfo{Provider: "aws", Location: "s3://exports/feb.json"}

	assert.Equal(t, source, source.WithAccount(nil))
	assert.Equal(t, model.SourceInfo{
		Provider:    "aws",
		Location:    "s3://exports/feb.json",
		AccountID:   "123456789012",
		AccountName: "user/flow",
	}, source.WithAccount(&model.AccountInfo{Provider: "aws", AccountID: "123456789012", AccountName: "user/flow"}))
}
