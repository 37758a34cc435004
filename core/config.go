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

type Config struct {
	Env          string
	Build        string
	AppName      string
	Debug        bool
	TestMode     bool
	Demo         bool
	SecretKey    string
	RollbarToken string
	PageSize     int
	WorkDir      string

	API struct {
		BaseURL string
		Timeout time.Duration
	}

	Server struct {
		Address                string
		Host                   string
		ShutdownTimeout        time.Duration
		SessionExpirationDelta time.Duration
	}

	Admin struct {
		Username string
		Password string
	}
}

// NewConfig reads the configuration from defaults, the optional `config/.env.<env>` file and the environment.
// Environment variables are prefixed with the upper-cased ENV value, e.g. DEV_API_BASEURL.
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("build", "develop")
	v.SetDefault("appName", "Quản lý trường đại học")
	v.SetDefault("secretKey", "n3x!q7-w0s@c4mpus_8r=lh2(k!x)#*t2(#yg4h^$cegm2emy")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("pageSize", 10)
	v.SetDefault("demo", false)
	v.SetDefault("api.baseURL", "http://localhost:8080")
	v.SetDefault("api.timeout", 10*time.Second)
	v.SetDefault("server.address", ":3000")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.sessionExpiration", 8*time.Hour)
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "admin")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	wd := Getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		Env:          env,
		Build:        v.GetString("build"),
		AppName:      v.GetString("appName"),
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		Demo:         v.GetBool("demo"),
		SecretKey:    v.GetString("secretKey"),
		RollbarToken: v.GetString("rollbarToken"),
		PageSize:     v.GetInt("pageSize"),
		WorkDir:      wd,
	}
	conf.API.BaseURL = strings.TrimRight(v.GetString("api.baseURL"), "/")
	conf.API.Timeout = v.GetDuration("api.timeout")
	conf.Server.Address = v.GetString("server.address")
	conf.Server.Host = v.GetString("server.host")
	conf.Server.ShutdownTimeout = v.GetDuration("server.shutdownTimeout")
	conf.Server.SessionExpirationDelta = v.GetDuration("server.sessionExpiration")
	conf.Admin.Username = v.GetString("admin.username")
	conf.Admin.Password = v.GetString("admin.password")

	if conf.PageSize <= 0 {
		conf.PageSize = 10
	}
	return conf
}
