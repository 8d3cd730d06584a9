package config_test

import (
	"testing"
	"time"

	"github.com/ordersvc/order-service/config"
)

func TestLoadWithPrefix_Defaults(t *testing.T) {
	cfg, err := config.LoadWithPrefix("ORDER_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("unexpected http addr: %q", cfg.HTTP.Addr)
	}
	if cfg.HTTP.GracefulTimeout != 5*time.Second {
		t.Fatalf("unexpected graceful timeout: %s", cfg.HTTP.GracefulTimeout)
	}
	if cfg.Postgres.MaxConns != 10 {
		t.Fatalf("unexpected max conns: %d", cfg.Postgres.MaxConns)
	}
	if cfg.Redis.Addr != "redis:6379" || cfg.Redis.DB != 0 {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
	if len(cfg.Kafka.Brokers) != 1 || cfg.Kafka.Brokers[0] != "kafka:9092" || cfg.Kafka.Topic != "order-events" {
		t.Fatalf("unexpected kafka config: %+v", cfg.Kafka)
	}
	if cfg.Auth.Timeout != 3*time.Second || cfg.Auth.TokenTTL != 15*time.Minute {
		t.Fatalf("unexpected auth config: %+v", cfg.Auth)
	}
	if cfg.Cache.OrderTTL != 0 || cfg.Cache.ListTTL != 30*time.Second {
		t.Fatalf("unexpected cache config: %+v", cfg.Cache)
	}
	if cfg.Tracing.Enabled {
		t.Fatal("tracing must be off by default")
	}
}

func TestLoadWithPrefix_EnvOverride(t *testing.T) {
	t.Setenv("ORDER_TEST_OVR_HTTP_ADDR", ":9090")
	t.Setenv("ORDER_TEST_OVR_CACHE_LIST_TTL", "2m")
	t.Setenv("ORDER_TEST_OVR_KAFKA_BROKERS", "a:9092,b:9092")

	cfg, err := config.LoadWithPrefix("ORDER_TEST_OVR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Fatalf("unexpected http addr: %q", cfg.HTTP.Addr)
	}
	if cfg.Cache.ListTTL != 2*time.Minute {
		t.Fatalf("unexpected list ttl: %s", cfg.Cache.ListTTL)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "b:9092" {
		t.Fatalf("unexpected brokers: %+v", cfg.Kafka.Brokers)
	}
}
