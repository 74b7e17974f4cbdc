package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env          string
		Debug        bool
		TestMode     bool
		AppName      string
		Build        string
		RollbarToken string
		Server       ServerConfig
		Database     DatabaseConfig
	}

	ServerConfig struct {
		Host            string
		Address         string
		DebugHost       string
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
	}

	DatabaseConfig struct {
		Path string
	}
)

// NewConfig reads the configuration from the environment.
// ENV (DEV, TEST, QA, PROD) selects the variables prefix and the optional `config/.env.<env>` file.
func NewConfig() *Config {
	vpr := viper.New()

	// defaults
	vpr.SetTypeByDefaultValue(true)
	vpr.SetDefault("debug", true)
	vpr.SetDefault("testMode", false)
	vpr.SetDefault("appName", "Assignment Tracker")
	vpr.SetDefault("build", "dev")
	vpr.SetDefault("rollbarToken", "")
	vpr.SetDefault("server.address", ":3000")
	vpr.SetDefault("server.debugHost", ":4000")
	vpr.SetDefault("server.readTimeout", 5*time.Second)
	vpr.SetDefault("server.writeTimeout", 5*time.Second)
	vpr.SetDefault("server.shutdownTimeout", 5*time.Second)
	vpr.SetDefault("server.disableReqLogs", false)
	vpr.SetDefault("database.path", "database.db")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		vpr.SetDefault("testMode", true)
	}
	vpr.SetEnvPrefix(env)
	vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	loadDotEnv(filepath.Join("config", ".env."+strings.ToLower(env)))
	vpr.AutomaticEnv()

	host, _ := os.Hostname()

	return &Config{
		Env:          env,
		Debug:        vpr.GetBool("debug"),
		TestMode:     vpr.GetBool("testMode"),
		AppName:      vpr.GetString("appName"),
		Build:        vpr.GetString("build"),
		RollbarToken: vpr.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:            host,
			Address:         vpr.GetString("server.address"),
			DebugHost:       vpr.GetString("server.debugHost"),
			ReadTimeout:     vpr.GetDuration("server.readTimeout"),
			WriteTimeout:    vpr.GetDuration("server.writeTimeout"),
			ShutdownTimeout: vpr.GetDuration("server.shutdownTimeout"),
			DisableReqLogs:  vpr.GetBool("server.disableReqLogs"),
		},
		Database: DatabaseConfig{
			Path: vpr.GetString("database.path"),
		},
	}
}

func loadDotEnv(path string) {
	if _, err := os.Stat(path); err == nil {
		if err := godotenv.Load(path); err != nil {
			log.Fatalf("config.godotenv(%s): %v", path, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", path, err)
	}
}
