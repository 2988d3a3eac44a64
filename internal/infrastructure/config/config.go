package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// EngineConstants holds every business constant the decision engine uses.
// Values are read once at startup and treated as immutable afterwards.
type EngineConstants struct {
	MinLoanAmount       int64
	MaxLoanAmount       int64
	MinLoanPeriodMonths int
	MaxLoanPeriodMonths int

	AgeOfMajority int

	LifeExpectancyEstonia   decimal.Decimal
	LifeExpectancyLatvia    decimal.Decimal
	LifeExpectancyLithuania decimal.Decimal

	Segment1CreditModifier int64
	Segment2CreditModifier int64
	Segment3CreditModifier int64

	ChecksumValidation bool
}

// KafkaConfig holds event publishing configuration.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Config is the full service configuration.
type Config struct {
	GRPCPort    int
	HTTPPort    int
	LogLevel    string
	LogFormat   string
	Kafka       KafkaConfig
	Engine      EngineConstants
	ServiceName string
}

// Load reads configuration from the environment, falling back to the
// defaults of the original business rules.
func Load() Config {
	return Config{
		GRPCPort:  getEnvInt("GRPC_PORT", 9095),
		HTTPPort:  getEnvInt("HTTP_PORT", 8095),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   getEnv("KAFKA_TOPIC", "decision.events"),
		},
		Engine: EngineConstants{
			MinLoanAmount:       getEnvInt64("MIN_LOAN_AMOUNT", 2000),
			MaxLoanAmount:       getEnvInt64("MAX_LOAN_AMOUNT", 10000),
			MinLoanPeriodMonths: getEnvInt("MIN_LOAN_PERIOD_MONTHS", 12),
			MaxLoanPeriodMonths: getEnvInt("MAX_LOAN_PERIOD_MONTHS", 60),

			AgeOfMajority: getEnvInt("AGE_OF_MAJORITY", 18),

			LifeExpectancyEstonia:   getEnvDecimal("LIFE_EXPECTANCY_ESTONIA", "78.6"),
			LifeExpectancyLatvia:    getEnvDecimal("LIFE_EXPECTANCY_LATVIA", "75.4"),
			LifeExpectancyLithuania: getEnvDecimal("LIFE_EXPECTANCY_LITHUANIA", "76.4"),

			Segment1CreditModifier: getEnvInt64("SEGMENT1_CREDIT_MODIFIER", 100),
			Segment2CreditModifier: getEnvInt64("SEGMENT2_CREDIT_MODIFIER", 300),
			Segment3CreditModifier: getEnvInt64("SEGMENT3_CREDIT_MODIFIER", 1000),

			ChecksumValidation: getEnvBool("CHECKSUM_VALIDATION", true),
		},
		ServiceName: "decision-engine",
	}
}

// Validate performs basic sanity checks on the loaded configuration.
func (c Config) Validate() error {
	e := c.Engine
	if e.MinLoanAmount <= 0 || e.MaxLoanAmount < e.MinLoanAmount {
		return fmt.Errorf("invalid loan amount bounds [%d, %d]", e.MinLoanAmount, e.MaxLoanAmount)
	}
	if e.MinLoanPeriodMonths <= 0 || e.MaxLoanPeriodMonths < e.MinLoanPeriodMonths {
		return fmt.Errorf("invalid loan period bounds [%d, %d]", e.MinLoanPeriodMonths, e.MaxLoanPeriodMonths)
	}
	if e.Segment1CreditModifier <= 0 || e.Segment2CreditModifier <= 0 || e.Segment3CreditModifier <= 0 {
		return fmt.Errorf("credit modifiers must be positive")
	}
	return nil
}

// GRPCAddr returns the listen address for the gRPC server.
func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

// HTTPAddr returns the listen address for the HTTP server.
func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDecimal(key, fallback string) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return decimal.RequireFromString(fallback)
}
