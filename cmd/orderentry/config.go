package main

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const envPrefix = "orderentry"

type config struct {
	DBHost     string `envconfig:"DB_HOST" default:"127.0.0.1"`
	DBPort     string `envconfig:"DB_PORT" default:"3306"`
	DBUser     string `envconfig:"DB_USER" default:"orderentry"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"orderentry"`
	DBName     string `envconfig:"DB_NAME" default:"orderentry"`
}

func loadConfig() (*config, error) {
	c := new(config)
	if err := envconfig.Process(envPrefix, c); err != nil {
		return nil, errors.Wrap(err, "process environment config")
	}
	return c, nil
}

func (c *config) dsn() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&multiStatements=true",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}
