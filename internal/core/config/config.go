package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// Timezone is the IANA zone used to bucket orders into calendar days and months.
	Timezone string `mapstructure:"APP_TIMEZONE" default:"UTC"`

	// Backend holds the shop backend API configuration.
	Backend BackendConfig `mapstructure:",squash"`

	// Cache holds the snapshot cache configuration.
	Cache CacheConfig `mapstructure:",squash"`

	// Payments holds the payment classification settings.
	Payments PaymentsConfig `mapstructure:",squash"`

	// Auth holds the bearer credential settings.
	Auth AuthConfig `mapstructure:",squash"`
}

// BackendConfig holds the connection details of the shop backend.
type BackendConfig struct {
	// URL is the base URL of the backend REST API.
	URL string `mapstructure:"BACKEND_URL" required:"true"`
	// TimeoutSeconds bounds every backend round trip.
	TimeoutSeconds int `mapstructure:"BACKEND_TIMEOUT_SECONDS" default:"10"`
	// ProductImageWorkers caps concurrent product lookups.
	ProductImageWorkers int `mapstructure:"PRODUCT_IMAGE_WORKERS" default:"4"`
}

// Timeout returns the backend timeout as a duration.
func (b BackendConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutSeconds) * time.Second
}

// CacheConfig holds the Redis snapshot store settings.
type CacheConfig struct {
	// RedisURL is the connection string, e.g. redis://localhost:6379/0.
	RedisURL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
	// SnapshotTTLSeconds is how long an order snapshot lives without being refreshed.
	SnapshotTTLSeconds int `mapstructure:"SNAPSHOT_TTL_SECONDS" default:"900"`
}

// SnapshotTTL returns the snapshot lifetime as a duration.
func (c CacheConfig) SnapshotTTL() time.Duration {
	return time.Duration(c.SnapshotTTLSeconds) * time.Second
}

// PaymentsConfig lists the payment methods confirmed by an external gateway.
type PaymentsConfig struct {
	// GatewayMethods is a comma separated list (e.g. "Razorpay,Stripe").
	GatewayMethods string `mapstructure:"GATEWAY_PAYMENT_METHODS" default:"Razorpay"`
}

// Methods splits GatewayMethods into trimmed, non-empty names.
func (p PaymentsConfig) Methods() []string {
	var out []string
	for _, m := range strings.Split(p.GatewayMethods, ",") {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}

// AuthConfig holds the optional signing secret of admin credentials.
type AuthConfig struct {
	// JWTSecret enables HS256 verification when set. Empty means the role claim is trusted as issued.
	JWTSecret string `mapstructure:"AUTH_JWT_SECRET"`
}

// Location resolves the configured timezone.
func (c *AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	config.Backend.URL = strings.TrimRight(config.Backend.URL, "/")

	return &config, nil
}

// processTags iterates over the struct fields, binds their env keys and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}
