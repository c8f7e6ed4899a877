// Package store loads the application's configuration: the currency label
// and the seed catalog. There is no persistence; config only shapes the
// initial in-memory state.
package store

import (
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/negocio/pkg/catalog"
	"tableflip.dev/negocio/pkg/money"
)

// Config exposes the loaded settings.
type Config interface {
	CurrencyLabel() string
	SeedServices() []catalog.Service
}

// DefaultSeed mirrors the stock catalog the app ships with.
func DefaultSeed() []catalog.Service {
	return []catalog.Service{
		{Name: "Corte de Cabello", Price: 20},
		{Name: "Diseño de Barba", Price: 15},
		{Name: "Tinte Capilar", Price: 50},
	}
}

type seedEntry struct {
	Name  string  `mapstructure:"name"`
	Price float64 `mapstructure:"price"`
}

type fileConfig struct {
	Currency string      `mapstructure:"currency"`
	Services []seedEntry `mapstructure:"services"`
}

func (f *fileConfig) CurrencyLabel() string { return f.Currency }

func (f *fileConfig) SeedServices() []catalog.Service {
	if len(f.Services) == 0 {
		return DefaultSeed()
	}
	seed := make([]catalog.Service, 0, len(f.Services))
	for _, s := range f.Services {
		if s.Name == "" || s.Price < 0 {
			continue
		}
		seed = append(seed, catalog.Service{Name: s.Name, Price: s.Price})
	}
	return seed
}

// LoadConfig reads .negocio.yaml from the working directory or the home
// directory. A missing file yields the defaults; NEGOCIO_* env vars
// override individual keys.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("currency", money.DefaultLabel)
	v.SetConfigName(".negocio")
	v.SetEnvPrefix("NEGOCIO")
	v.AutomaticEnv()

	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &fileConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.Currency == "" {
		cfg.Currency = money.DefaultLabel
	}
	return cfg, nil
}
