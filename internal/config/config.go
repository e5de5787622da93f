package config

import "github.com/kelseyhightower/envconfig"

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port          string   `envconfig:"PORT" default:"8080"`
	MongoURI      string   `envconfig:"MONGODB_URI" required:"true"`
	DBName        string   `envconfig:"DB_NAME" default:"feedback_portal"`
	JWTSecret     string   `envconfig:"JWT_SECRET" required:"true"`
	TokenTTLHours int      `envconfig:"TOKEN_TTL_HOURS" default:"24"`
	BcryptCost    int      `envconfig:"BCRYPT_COST" default:"12"`
	ResendAPIKey  string   `envconfig:"RESEND_API_KEY" default:""`
	FromEmail     string   `envconfig:"FROM_EMAIL" default:""`
	CORSOrigins   []string `envconfig:"CORS_ORIGINS" default:"*"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
