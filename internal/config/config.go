package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	FrontendURL string      `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	Database Database `envPrefix:"DB_"`
	Midtrans Midtrans `envPrefix:"MIDTRANS_"`
	Auth     Auth     `envPrefix:"AUTH_"`
}

type Database struct {
	// Driver selects the gorm dialect: "mysql" or "sqlite".
	Driver string `env:"DRIVER" envDefault:"sqlite"`
	DSN    string `env:"DSN" envDefault:"storefront.db"`
	Seed   bool   `env:"SEED" envDefault:"true"`
}

type Midtrans struct {
	ServerKey  string `env:"SERVER_KEY"`
	ClientKey  string `env:"CLIENT_KEY"`
	Production bool   `env:"PRODUCTION" envDefault:"false"`
}

type Auth struct {
	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	// Token lifetime in minutes.
	TokenTTL int `env:"TOKEN_TTL" envDefault:"60"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
