package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr     string
	GinMode     string
	MySQLDSN    string
	JWTSecret   string
	CORSOrigins []string
	SeedOnStart bool
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}

	seed := true
	if v := strings.TrimSpace(os.Getenv("SEED_ON_START")); strings.EqualFold(v, "false") || v == "0" {
		seed = false
	}

	return Env{
		AppAddr:     appAddr,
		GinMode:     strings.TrimSpace(os.Getenv("GIN_MODE")),
		MySQLDSN:    strings.TrimSpace(os.Getenv("MYSQL_DSN")),
		JWTSecret:   secret,
		CORSOrigins: origins,
		SeedOnStart: seed,
	}
}
