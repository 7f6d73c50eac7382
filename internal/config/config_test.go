package config

import (
	"testing"
	"time"
)

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":  "postgres://localhost/orders",
		"KAFKA_BROKERS": "localhost:9092",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.RunAddress != defaultRunAddress {
		t.Fatalf("unexpected run address %s", cfg.RunAddress)
	}
	if cfg.OrderEventsTopic != defaultOrderEventsTopic {
		t.Fatalf("unexpected topic %s", cfg.OrderEventsTopic)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("unexpected shutdown timeout %s", cfg.ShutdownTimeout)
	}
	if len(cfg.KafkaBrokers) != 1 || cfg.KafkaBrokers[0] != "localhost:9092" {
		t.Fatalf("unexpected brokers %v", cfg.KafkaBrokers)
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	cfg, err := load(
		[]string{"-a", ":9000", "-b", "kafka-1:9092, kafka-2:9092", "-topic", "orders-v2"},
		lookupFrom(map[string]string{
			"DATABASE_URI":  "postgres://localhost/orders",
			"KAFKA_BROKERS": "ignored:9092",
			"RUN_ADDRESS":   ":8081",
		}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.RunAddress != ":9000" {
		t.Fatalf("unexpected run address %s", cfg.RunAddress)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "kafka-2:9092" {
		t.Fatalf("unexpected brokers %v", cfg.KafkaBrokers)
	}
	if cfg.OrderEventsTopic != "orders-v2" {
		t.Fatalf("unexpected topic %s", cfg.OrderEventsTopic)
	}
}

func TestLoadRequiresDatabaseURI(t *testing.T) {
	if _, err := load(nil, lookupFrom(map[string]string{"KAFKA_BROKERS": "localhost:9092"})); err == nil {
		t.Fatal("expected error for missing database URI")
	}
}

func TestLoadRequiresKafkaBrokers(t *testing.T) {
	if _, err := load(nil, lookupFrom(map[string]string{"DATABASE_URI": "postgres://localhost/orders"})); err == nil {
		t.Fatal("expected error for missing brokers")
	}
}

func TestLoadShutdownTimeout(t *testing.T) {
	cfg, err := load([]string{"-shutdown-timeout", "3s"}, lookupFrom(map[string]string{
		"DATABASE_URI":  "postgres://localhost/orders",
		"KAFKA_BROKERS": "localhost:9092",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("unexpected shutdown timeout %s", cfg.ShutdownTimeout)
	}

	if _, err := load([]string{"-shutdown-timeout", "nope"}, lookupFrom(map[string]string{
		"DATABASE_URI":  "postgres://localhost/orders",
		"KAFKA_BROKERS": "localhost:9092",
	})); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}
