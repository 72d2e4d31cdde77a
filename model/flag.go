package model

type Flags struct {
	// Common flags
	Input       string
	Month       string
	Format      string
	Output      string
	Now         string
	Chart       bool
	StatesOnly  bool
	SkipInvalid bool
	ConfigFile  string
	LogLevel    string
	LogFormat   string

	// AWS-specific flags
	Region  string
	Profile string

	// GCP-specific flags
	Project string

	// Azure-specific flags
	AccountURL   string
	Subscription string
}
