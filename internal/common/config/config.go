// internal/common/config/config.go
package config

import (
	"fmt"

	"parttime-match/internal/matching"
)

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Matching MatchingConfig `mapstructure:"matching"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string.
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// MatchingConfig carries the tunable scoring policy. The weight split is a
// policy decision, not a contract; the contract is that sub-scores stay
// bounded and the composite stays in [0,100].
type MatchingConfig struct {
	WageWeight      int `mapstructure:"wage_weight"`
	ProximityWeight int `mapstructure:"proximity_weight"`
	SkillsWeight    int `mapstructure:"skills_weight"`
	StartDateWeight int `mapstructure:"start_date_weight"`
	PointsPerSkill  int `mapstructure:"points_per_skill"`

	NearBandKm float64 `mapstructure:"near_band_km"`
	MidBandKm  float64 `mapstructure:"mid_band_km"`
	FarBandKm  float64 `mapstructure:"far_band_km"`
	MidPoints  int     `mapstructure:"mid_points"`
	FarPoints  int     `mapstructure:"far_points"`

	AdmissionThreshold int `mapstructure:"admission_threshold"`

	SnapshotCacheTTL int `mapstructure:"snapshot_cache_ttl"` // milliseconds
}

// Policy converts the config section into an engine policy.
func (m MatchingConfig) Policy() matching.Policy {
	return matching.Policy{
		WageWeight:         m.WageWeight,
		ProximityWeight:    m.ProximityWeight,
		SkillsWeight:       m.SkillsWeight,
		StartDateWeight:    m.StartDateWeight,
		PointsPerSkill:     m.PointsPerSkill,
		NearBandKm:         m.NearBandKm,
		MidBandKm:          m.MidBandKm,
		FarBandKm:          m.FarBandKm,
		MidPoints:          m.MidPoints,
		FarPoints:          m.FarPoints,
		AdmissionThreshold: m.AdmissionThreshold,
	}
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
