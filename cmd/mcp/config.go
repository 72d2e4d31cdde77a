package main

import (
	"os"

	"github.com/elC0mpa/flow-doctor/config"
	"github.com/elC0mpa/flow-doctor/model"
)

// Config holds environment-based defaults for the report tools
type Config struct {
	Input string
	Month string

	// AWS configuration
	AWSRegion  string
	AWSProfile string

	// GCP configuration
	GCPProjectID string

	// Azure configuration
	AzureAccountURL     string
	AzureSubscriptionID string

	LogLevel string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Input:               os.Getenv("FLOW_DOCTOR_INPUT"),
		Month:               getEnvOrDefault("FLOW_DOCTOR_MONTH", config.DefaultMonth),
		AWSRegion:           os.Getenv("AWS_REGION"),
		AWSProfile:          os.Getenv("AWS_PROFILE"),
		GCPProjectID:        os.Getenv("GCP_PROJECT_ID"),
		AzureAccountURL:     os.Getenv("AZURE_STORAGE_ACCOUNT_URL"),
		AzureSubscriptionID: os.Getenv("AZURE_SUBSCRIPTION_ID"),
		LogLevel:            getEnvOrDefault("FLOW_DOCTOR_LOG_LEVEL", config.DefaultLogLevel),
	}
}

// Defaults returns the flags a tool call starts from before its arguments
// are applied.
func (c *Config) Defaults() model.Flags {
	return model.Flags{
		Input:        c.Input,
		Month:        c.Month,
		Format:       "json",
		LogLevel:     c.LogLevel,
		Region:       c.AWSRegion,
		Profile:      c.AWSProfile,
		Project:      c.GCPProjectID,
		AccountURL:   c.AzureAccountURL,
		Subscription: c.AzureSubscriptionID,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
