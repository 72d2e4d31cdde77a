package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/elC0mpa/flow-doctor/model"
	"github.com/go-playground/validator/v10"
	er "github.com/mcorbin/corbierror"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMonth     = "2012-02"
	DefaultFormat    = "table"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

type Log struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

type AWS struct {
	Region  string `yaml:"region"`
	Profile string `yaml:"profile"`
}

type GCP struct {
	Project string `yaml:"project"`
}

type Azure struct {
	AccountURL   string `yaml:"account_url" validate:"omitempty,url"`
	Subscription string `yaml:"subscription"`
}

type Configuration struct {
	Input       string `yaml:"input"`
	Month       string `yaml:"month" validate:"omitempty,datetime=2006-01"`
	Format      string `yaml:"format" validate:"omitempty,oneof=table json yaml msgpack"`
	Output      string `yaml:"output"`
	Now         string `yaml:"now" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Chart       bool   `yaml:"chart"`
	StatesOnly  bool   `yaml:"states_only"`
	SkipInvalid bool   `yaml:"skip_invalid"`
	Log         Log    `yaml:"log"`
	AWS         AWS    `yaml:"aws"`
	GCP         GCP    `yaml:"gcp"`
	Azure       Azure  `yaml:"azure"`
}

func Default() Configuration {
	return Configuration{
		Month:  DefaultMonth,
		Format: DefaultFormat,
		Log: Log{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (Configuration, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, fmt.Errorf("fail to read configuration file: %w", err)
	}
	if err := yaml.Unmarshal(file, &config); err != nil {
		return Configuration{}, fmt.Errorf("fail to parse yaml configuration file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Configuration{}, err
	}
	return config, nil
}

func (c Configuration) Validate() error {
	err := Validator.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s fails on %s", fieldErr.Namespace(), fieldErr.Tag()))
	}
	return er.Newf("invalid configuration: %s", er.BadRequest, true, strings.Join(messages, ", "))
}

func (c Configuration) ToFlags(path string) model.Flags {
	return model.Flags{
		Input:        c.Input,
		Month:        c.Month,
		Format:       c.Format,
		Output:       c.Output,
		Now:          c.Now,
		Chart:        c.Chart,
		StatesOnly:   c.StatesOnly,
		SkipInvalid:  c.SkipInvalid,
		ConfigFile:   path,
		LogLevel:     c.Log.Level,
		LogFormat:    c.Log.Format,
		Region:       c.AWS.Region,
		Profile:      c.AWS.Profile,
		Project:      c.GCP.Project,
		AccountURL:   c.Azure.AccountURL,
		Subscription: c.Azure.Subscription,
	}
}
