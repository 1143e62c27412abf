package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	// DefaultTimezone is used for users without a timezone of their own.
	DefaultTimezone string `envconfig:"DIAFIT_DEFAULT_TIMEZONE" default:"Europe/Berlin"`

	// RollingPeriodDays are the trailing window lengths computed by the
	// rolling summary task.
	RollingPeriodDays []int `envconfig:"DIAFIT_ROLLING_PERIOD_DAYS" default:"1,3,7,14,30,90"`
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
