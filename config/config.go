// Package config provides configuration management for the swiftfix application.
// It handles loading and validation of configuration values from environment variables,
// with support for required variables, default values, and collective error reporting:
// every problem found while loading is gathered and returned as one error so a
// misconfigured deployment fails fast with the full picture.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PoolConfig represents configuration for the database connection pool.
type PoolConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	MaxSize  int
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	// BcryptCost is the bcrypt cost factor used when hashing new passwords.
	// Existing hashes keep whatever cost they were created with.
	BcryptCost int
}

// UploadConfig holds settings for clearance-certificate file storage.
type UploadConfig struct {
	// Dir is the directory uploaded files are written to and served from.
	Dir string
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port string // Port for the HTTP server
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	DB     *PoolConfig
	Auth   *AuthConfig
	Upload *UploadConfig
	Server *ServerConfig
}

// getRequiredEnv reads a required environment variable, appending an error to
// the errors slice if the variable is not set.
func getRequiredEnv(key string, errors *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errors = append(*errors, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

// getOptionalEnv reads an optional environment variable with a default string value.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getOptionalEnvInt reads an optional environment variable parsed as an int.
// Uses defaultValue if not set; appends an error if parsing fails.
func getOptionalEnvInt(key string, defaultValue int, errors *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

// parseAndValidatePoolSize converts a string value to an integer and clamps it
// between 5 and 100 connections, collecting an error when out of range.
func parseAndValidatePoolSize(valueStr string, varName string, errors *[]string) int {
	if valueStr == "" {
		return 5
	}
	size, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid pool size for %s: expected integer, got '%s': %v", varName, valueStr, err))
		return 5
	}

	if size < 5 {
		*errors = append(*errors, fmt.Sprintf("pool size for %s (%d) is less than minimum 5, clamping to 5", varName, size))
		size = 5
	}
	if size > 100 {
		*errors = append(*errors, fmt.Sprintf("pool size for %s (%d) is greater than maximum 100, clamping to 100", varName, size))
		size = 100
	}
	return size
}

// parseAndValidateBcryptCost clamps the configured cost to bcrypt's legal range.
// Cost below bcrypt.MinCost silently became the library default in older code;
// here it is reported like every other config problem.
func parseAndValidateBcryptCost(valueStr string, errors *[]string) int {
	if valueStr == "" {
		return bcrypt.DefaultCost
	}
	cost, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for BCRYPT_COST: expected integer, got '%s': %v", valueStr, err))
		return bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		*errors = append(*errors, fmt.Sprintf("BCRYPT_COST (%d) outside [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost))
		return bcrypt.DefaultCost
	}
	return cost
}

// LoadConfig creates and returns an AppConfig by reading and validating environment variables.
// It collects all errors encountered during loading and returns a single error if any exist.
func LoadConfig() (*AppConfig, error) {
	var errors []string

	// Database configuration
	dbUser := getRequiredEnv("DB_USER", &errors)
	dbPassword := getRequiredEnv("DB_PASSWORD", &errors)
	dbName := getRequiredEnv("DB_NAME", &errors)
	dbHost := getOptionalEnv("DB_HOST", "localhost")
	dbPort := getOptionalEnvInt("DB_PORT", 5432, &errors)
	poolSize := parseAndValidatePoolSize(getOptionalEnv("DB_POOL_SIZE", ""), "DB_POOL_SIZE", &errors)

	dbConfig := &PoolConfig{
		Host:     dbHost,
		Port:     dbPort,
		User:     dbUser,
		Password: dbPassword,
		DBName:   dbName,
		MaxSize:  poolSize,
	}

	// Auth configuration
	authConfig := &AuthConfig{
		BcryptCost: parseAndValidateBcryptCost(getOptionalEnv("BCRYPT_COST", ""), &errors),
	}

	// Upload storage configuration
	uploadConfig := &UploadConfig{
		Dir: getOptionalEnv("UPLOAD_DIR", "uploads"),
	}

	// Server configuration. 8081 is the port the web clients are built against.
	serverConfig := &ServerConfig{
		Port: getOptionalEnv("PORT", "8081"),
	}

	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return &AppConfig{
		DB:     dbConfig,
		Auth:   authConfig,
		Upload: uploadConfig,
		Server: serverConfig,
	}, nil
}
