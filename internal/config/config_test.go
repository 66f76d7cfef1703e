package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Env:         "development",
		LogLevel:    "info",
		ListenAddr:  ":8088",
		StorageType: "mongo",
		MongoURI:    "mongodb://localhost:27017",
		Database:    "digital_wellness",
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	c := validConfig()
	c.StorageType = "postgres"
	assert.Error(t, c.Validate())
	c.PostgresDSN = "postgres://localhost/wellness"
	assert.NoError(t, c.Validate())

	c = validConfig()
	c.StorageType = "file"
	c.DataFile = ""
	assert.Error(t, c.Validate())
	c.DataFile = "data/submissions.json"
	assert.NoError(t, c.Validate())

	c = validConfig()
	c.StorageType = "redis"
	assert.Error(t, c.Validate())

	c = validConfig()
	c.Env = "qa"
	assert.Error(t, c.Validate())

	c = validConfig()
	c.Database = ""
	assert.Error(t, c.Validate())
}
