package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/fetchback/fetchback"
)

// Config describes one table on one backend, column by column. Example:
//
//	backend: postgres
//	table: users
//	columns:
//	  - name: id
//	    pk: true
//	  - name: token
//	    default: gen_random_uuid()
//	  - name: created_at
//	    serverdefault: true
//	    eager: true
//	  - name: email
//	    supplied: value
type Config struct {
	Backend string         `mapstructure:"backend"`
	Table   string         `mapstructure:"table"`
	Columns []ColumnConfig `mapstructure:"columns"`
}

type ColumnConfig struct {
	Name          string `mapstructure:"name"`
	PK            bool   `mapstructure:"pk"`
	ServerDefault bool   `mapstructure:"serverdefault"`
	Default       string `mapstructure:"default"`
	Eager         bool   `mapstructure:"eager"`
	Supplied      string `mapstructure:"supplied"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("fetchback")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Backend == "" {
		return nil, fmt.Errorf("config: backend is required")
	}
	if cfg.Table == "" {
		return nil, fmt.Errorf("config: table is required")
	}
	if len(cfg.Columns) == 0 {
		return nil, fmt.Errorf("config: at least one column is required")
	}
	return &cfg, nil
}

func (c *Config) backend() (*fetchback.Backend, error) {
	b := fetchback.Lookup(c.Backend)
	if b == nil {
		return nil, fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	return b, nil
}

func (c ColumnConfig) column(table string) (fetchback.Column, error) {
	col := fetchback.Column{
		Table: table,
		Name:  c.Name,

		PrimaryKey:    c.PK,
		ServerDefault: c.ServerDefault,
		Expression:    c.Default,
		Eager:         c.Eager,
	}

	switch c.Supplied {
	case "", "unset":
		col.Supplied = fetchback.StatusUnset
	case "null":
		col.Supplied = fetchback.StatusNull
	case "value":
		col.Supplied = fetchback.StatusSet
	default:
		return col, fmt.Errorf("config: column %s: supplied must be unset, null or value, got %q", c.Name, c.Supplied)
	}
	return col, nil
}
