package config

import (
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// DBEnv holds MySQL connection settings.
type DBEnv struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Env struct {
	AppAddr     string
	GinMode     string
	DB          DBEnv
	CORSOrigins []string
	BcryptCost  int
}

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:3001",
	"http://127.0.0.1:3001",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// LoadEnv reads .env (when present) and the process environment once at startup.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil {
		log.Println("[CONFIG] .env tidak ditemukan, memakai environment sistem")
	}
	return envFromLookup(os.LookupEnv)
}

func envFromLookup(lookup func(string) (string, bool)) Env {
	get := func(key, def string) string {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		if !ok || v == "" {
			return def
		}
		return v
	}

	appAddr := get("APP_ADDR", "")
	if appAddr == "" {
		appAddr = ":" + get("PORT", "3000")
	}

	origins := defaultCORSOrigins
	if raw := get("CORS_ALLOWED_ORIGINS", ""); raw != "" {
		origins = []string{}
		for _, o := range strings.Split(raw, ",") {
			if o, ok := normalizeOrigin(o); ok {
				origins = append(origins, o)
			}
		}
	}

	cost := 10
	if raw := get("BCRYPT_COST", ""); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < bcrypt.MinCost || n > bcrypt.MaxCost {
			log.Printf("[CONFIG] BCRYPT_COST=%q tidak valid, memakai %d", raw, cost)
		} else {
			cost = n
		}
	}

	return Env{
		AppAddr: appAddr,
		GinMode: get("GIN_MODE", ""),
		DB: DBEnv{
			Host:     get("DB_HOST", "127.0.0.1"),
			Port:     get("DB_PORT", "3306"),
			User:     get("DB_USER", "root"),
			Password: get("DB_PASSWORD", ""),
			Name:     get("DB_NAME", "library"),
		},
		CORSOrigins: origins,
		BcryptCost:  cost,
	}
}

// normalizeOrigin turns a CORS_ALLOWED_ORIGINS entry into scheme://host[:port].
// Entries without a scheme default to http; anything else unparseable is skipped.
func normalizeOrigin(raw string) (string, bool) {
	o := strings.TrimRight(strings.TrimSpace(raw), "/")
	if o == "" {
		return "", false
	}
	if o == "*" {
		return o, true
	}
	if !strings.Contains(o, "://") {
		o = "http://" + o
	}
	u, err := url.Parse(o)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" || (u.Path != "" && u.Path != "/") {
		log.Printf("[CONFIG] CORS origin %q tidak valid, diabaikan", raw)
		return "", false
	}
	return u.Scheme + "://" + u.Host, true
}
