package database

import (
	"context"
	"testing"
	"time"

	appconfig "focusquote/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisOptions_Address(t *testing.T) {
	opts, err := RedisOptions(appconfig.RedisConfig{Address: "cache:6379", Password: "secret", DB: 2, DialTimeout: 3 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 3*time.Second, opts.DialTimeout)
}

func TestRedisOptions_URLWins(t *testing.T) {
	opts, err := RedisOptions(appconfig.RedisConfig{URL: "redis://:pw@redis.internal:6380/1", Address: "ignored:1"})
	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6380", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 1, opts.DB)
}

func TestRedisOptions_Errors(t *testing.T) {
	_, err := RedisOptions(appconfig.RedisConfig{})
	assert.Error(t, err)

	_, err = RedisOptions(appconfig.RedisConfig{URL: "http://not-redis"})
	assert.Error(t, err)
}

func TestNewDynamoDBConfig(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), appconfig.DynamoDBConfig{
		Region:          "sa-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
		Endpoint:        "http://localhost:8000",
	})
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
}
