package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type WYAConfig struct {
	Env 	     string `yaml:"env"`
	HTTPServer 	 `yaml:"http_server"`
	PaymentsDB 	 `yaml:"payments_db"`
	LogConfig 	 `yaml:"log_config"`
	Daraja 		 `yaml:"daraja"`
	KafkaService `yaml:"kafka-service"`
}

type HTTPServer struct {
	Host 		   string   `yaml:"host"`
	Port 		   string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type PaymentsDB struct {
	Dsn 		   string `yaml:"dsn" env:"WYA_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel 	string 	`yaml:"log_level"`
	LogFormat 	string 	`yaml:"log_format"`
	LogOutput 	string 	`yaml:"log_output"`
}

// Daraja holds the M-Pesa gateway endpoint and credentials.
// Secrets come from the environment, never from literals in code.
type Daraja struct {
	BaseURL 	   string 		 `yaml:"base_url"`
	ConsumerKey    string 		 `yaml:"consumer_key" env:"DARAJA_CONSUMER_KEY"`
	ConsumerSecret string 		 `yaml:"consumer_secret" env:"DARAJA_CONSUMER_SECRET"`
	Shortcode 	   string 		 `yaml:"shortcode" env:"DARAJA_SHORTCODE"`
	Passkey 	   string 		 `yaml:"passkey" env:"DARAJA_PASSKEY"`
	CallbackURL    string 		 `yaml:"callback_url"`
	Timeout 	   time.Duration `yaml:"timeout" env-default:"30s"`
	PendingExpiry  time.Duration `yaml:"pending_expiry" env-default:"5m"`
}

type KafkaService struct {
	Host 	   string `yaml:"host"`
	Port 	   string `yaml:"port"`
	Username   string `yaml:"username" env:"KAFKA_USERNAME"`
	Password   string `yaml:"password" env:"KAFKA_PASSWORD"`
	Mechanism  string `yaml:"mechanism"`
	TLSEnabled bool   `yaml:"tls_enabled"`
}

func MustLoad() *WYAConfig {

	// Processing env config variable and file
	configPath := os.Getenv("WYA_CONFIG_PATH")

	if configPath == ""{
		log.Fatalf("WYA_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil{
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg WYAConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil{
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
