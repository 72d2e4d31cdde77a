package flag

import (
	"github.com/elC0mpa/flow-doctor/config"
	"github.com/elC0mpa/flow-doctor/model"
	er "github.com/mcorbin/corbierror"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func NewService() *service {
	return &service{}
}

// GetParsedFlags parses args, without the program name, over the optional
// configuration file. Only flags set on the command line override it.
func (s *service) GetParsedFlags(args []string) (model.Flags, error) {
	var cli model.Flags
	var parsed model.Flags
	ran := false

	cmd := &cobra.Command{
		Use:   "flow-doctor [input]",
		Short: "Time spent per work item and schedule state, in total and in business hours",
		Long: `flow-doctor reads a lookback snapshot export and reports how long each work
item was active during a month, and how long items spent in each schedule
state. Business hours are 09:00-17:00 UTC, Monday to Friday.

Inputs: a file path, "-" for stdin, s3://bucket/key, bq://project.dataset.table
or azblob://container/blob.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cli.ConfigFile)
			if err != nil {
				return err
			}
			parsed = cfg.ToFlags(cli.ConfigFile)
			overlay(cmd.Flags(), &parsed, cli)
			if len(args) == 1 && !cmd.Flags().Changed("input") {
				parsed.Input = args[0]
			}
			ran = true
			return validate(parsed)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&cli.Input, "input", "i", "", "Snapshot export to read (path, -, s3://, bq://, azblob://)")
	fs.StringVarP(&cli.Month, "month", "m", config.DefaultMonth, "Month to report on, as YYYY-MM")
	fs.StringVarP(&cli.Format, "format", "f", config.DefaultFormat, "Output format (table, json, yaml, msgpack)")
	fs.StringVarP(&cli.Output, "output", "o", "", "Write the export to this file instead of stdout (json, yaml and msgpack only)")
	fs.StringVar(&cli.Now, "now", "", "Instant open snapshots are resolved against (RFC3339, default: current time)")
	fs.BoolVar(&cli.Chart, "chart", false, "Display business hours per schedule state as a bar chart")
	fs.BoolVar(&cli.StatesOnly, "states-only", false, "Only compute the schedule state report")
	fs.BoolVar(&cli.SkipInvalid, "skip-invalid", false, "Log and skip invalid snapshots instead of failing")
	fs.StringVarP(&cli.ConfigFile, "config", "c", "", "Path to the YAML configuration file")
	fs.StringVarP(&cli.LogLevel, "log-level", "v", config.DefaultLogLevel, "Logger log level (debug, info, warn, error)")
	fs.StringVar(&cli.LogFormat, "log-format", config.DefaultLogFormat, "Logger logs format (text, json)")
	fs.StringVar(&cli.Region, "aws-region", "", "AWS region for s3:// inputs")
	fs.StringVar(&cli.Profile, "aws-profile", "", "AWS profile configuration")
	fs.StringVar(&cli.Project, "gcp-project", "", "GCP project billed for bq:// queries")
	fs.StringVar(&cli.AccountURL, "azure-account-url", "", "Azure storage account URL for azblob:// inputs")
	fs.StringVar(&cli.Subscription, "azure-subscription", "", "Azure subscription owning the storage account")

	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return model.Flags{}, err
	}
	if !ran {
		return model.Flags{}, ErrHelpRequested
	}
	return parsed, nil
}

func overlay(fs *pflag.FlagSet, dst *model.Flags, cli model.Flags) {
	bindings := []struct {
		name  string
		apply func()
	}{
		{"input", func() { dst.Input = cli.Input }},
		{"month", func() { dst.Month = cli.Month }},
		{"format", func() { dst.Format = cli.Format }},
		{"output", func() { dst.Output = cli.Output }},
		{"now", func() { dst.Now = cli.Now }},
		{"chart", func() { dst.Chart = cli.Chart }},
		{"states-only", func() { dst.StatesOnly = cli.StatesOnly }},
		{"skip-invalid", func() { dst.SkipInvalid = cli.SkipInvalid }},
		{"log-level", func() { dst.LogLevel = cli.LogLevel }},
		{"log-format", func() { dst.LogFormat = cli.LogFormat }},
		{"aws-region", func() { dst.Region = cli.Region }},
		{"aws-profile", func() { dst.Profile = cli.Profile }},
		{"gcp-project", func() { dst.Project = cli.Project }},
		{"azure-account-url", func() { dst.AccountURL = cli.AccountURL }},
		{"azure-subscription", func() { dst.Subscription = cli.Subscription }},
	}
	for _, binding := range bindings {
		if fs.Changed(binding.name) {
			binding.apply()
		}
	}
}

func validate(flags model.Flags) error {
	if flags.Input == "" {
		return er.New("missing snapshot input, use --input or the input argument", er.BadRequest, true)
	}
	checks := []struct {
		name  string
		value string
		tag   string
	}{
		{"--month", flags.Month, "required,datetime=2006-01"},
		{"--format", flags.Format, "required,oneof=table json yaml msgpack"},
		{"--now", flags.Now, "omitempty,datetime=2006-01-02T15:04:05Z07:00"},
		{"--log-level", flags.LogLevel, "omitempty,oneof=debug info warn error"},
		{"--log-format", flags.LogFormat, "omitempty,oneof=text json"},
	}
	for _, check := range checks {
		if err := config.Validator.Var(check.value, check.tag); err != nil {
			return er.Newf("invalid %s value %q", er.BadRequest, true, check.name, check.value)
		}
	}
	if flags.Output != "" && flags.Format == "table" {
		return er.New("--output needs an export format, use --format json, yaml or msgpack", er.BadRequest, true)
	}
	return nil
}
