package kafka_config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DisabledWithoutBrokers(t *testing.T) {
	t.Setenv(EnvKafkaBrokers, "")

	cfg := Load()
	assert.False(t, cfg.Enabled())
	assert.Error(t, cfg.Validate())
}

func TestLoad_SplitsBrokers(t *testing.T) {
	t.Setenv(EnvKafkaBrokers, "kafka-1:9092, kafka-2:9092,,")

	cfg := Load()
	require.True(t, cfg.Enabled())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Brokers)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_Rejections(t *testing.T) {
	t.Setenv(EnvKafkaBrokers, "kafka:9092")

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"compression", func(c *Config) { c.ProducerCompression = "brotli" }, "ProducerCompression"},
		{"acks", func(c *Config) { c.ProducerRequireAcks = 2 }, "ProducerRequireAcks"},
		{"offset", func(c *Config) { c.ConsumerStartOffset = 42 }, "ConsumerStartOffset"},
		{"group", func(c *Config) { c.ConsumerGroupID = "" }, "ConsumerGroupID"},
		{"retries", func(c *Config) { c.ConsumerMaxRetries = -1 }, "ConsumerMaxRetries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
