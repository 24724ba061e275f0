package resource

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

const defaultPropertiesPath = "configs/application.yml"

var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)

// Load reads the properties file pointed by PROPERTIES_FILE_PATH, or configs/application.yml
func Load() (string, error) {
	path, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		path = defaultPropertiesPath
	}
	return path, Init(path)
}

// Init loads application properties from the YAML file at filepath, resolving ${ENV:default} placeholders
func Init(filepath string) error {
	viper.SetConfigFile(filepath)
	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read properties: %w", err)
	}

	properties := make(map[string]any)
	parsePropertiesMap("", viper.AllSettings(), properties)

	for key, value := range properties {
		viper.Set(key, value)
	}
	return nil
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case []any:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable replaces a ${NAME:default} value with the environment variable or its default.
// Plain values are returned untouched.
func resolveEnvVariable(value string) any {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

func Get(key string) any {
	return viper.Get(key)
}

func GetString(key string) string {
	return viper.GetString(key)
}

// GetStringOrDefault returns the property or defaultValue when it is empty
func GetStringOrDefault(key, defaultValue string) string {
	if value := viper.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// GetDurationOrDefault returns the property or defaultValue when it is unset or zero
func GetDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := viper.GetDuration(key); value > 0 {
		return value
	}
	return defaultValue
}

func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetIntOrDefault returns the property or defaultValue when it is unset or zero
func GetIntOrDefault(key string, defaultValue int) int {
	if value := viper.GetInt(key); value != 0 {
		return value
	}
	return defaultValue
}

func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}

// IsSet reports whether the key holds a non-empty value
func IsSet(key string) bool {
	return viper.IsSet(key) && viper.GetString(key) != ""
}
