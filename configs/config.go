package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

// Enabled reports whether uploads should go to R2 instead of the local media dir.
func (r R2) Enabled() bool {
	return r.AccountID != "" && r.AccessKey != "" && r.SecretKey != "" && r.BucketName != ""
}

type Config struct {
	Port               string
	StoreDriver        string
	SQLitePath         string
	PostgresURI        string
	RedisURI           string
	AnalyticsSource    string
	AnalyticsRefresh   string
	WorkspaceSweep     string
	PostDelay          time.Duration
	DashboardRecent    int
	ConnectedPlatforms []string
	MediaDir           string
	R2                 R2
	SecretKey          string
	CookieName         string
	SessionTTL         time.Duration
	BaseURL            string
}

func LoadConfig() *Config {
	return &Config{
		Port:               getEnv("PORT", "3000"),
		StoreDriver:        getEnv("STORE_DRIVER", "sqlite"),
		SQLitePath:         getEnv("SQLITE_PATH", "./data/crosspost.db"),
		PostgresURI:        getEnv("POSTGRES_URI", ""),
		RedisURI:           getEnv("REDIS_URI", ""),
		AnalyticsSource:    getEnv("ANALYTICS_SOURCE", "data/analytics.json"),
		AnalyticsRefresh:   getEnv("ANALYTICS_REFRESH", "@every 00h05m00s"),
		WorkspaceSweep:     getEnv("WORKSPACE_SWEEP", "@every 00h10m00s"),
		PostDelay:          getDuration("POST_DELAY", 1500*time.Millisecond),
		DashboardRecent:    getInt("DASHBOARD_RECENT", 3),
		ConnectedPlatforms: getList("CONNECTED_PLATFORMS", "instagram,tiktok,youtube"),
		MediaDir:           getEnv("MEDIA_DIR", "./data/media"),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
		SecretKey:  getEnv("SECRET_KEY", ""),
		CookieName: getEnv("COOKIE_NAME", "cpp_session"),
		SessionTTL: getDuration("SESSION_TTL", 24*time.Hour),
		BaseURL:    getEnv("BASE_URL", "http://localhost:3000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d < 0 {
		return defaultValue
	}
	return d
}

func getInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func getList(key, defaultValue string) []string {
	var list []string
	for _, item := range strings.Split(getEnv(key, defaultValue), ",") {
		if item = strings.ToLower(strings.TrimSpace(item)); item != "" {
			list = append(list, item)
		}
	}
	return list
}
