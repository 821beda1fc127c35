package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type ExtractionBackend string

const (
	ExtractionBackendFile      ExtractionBackend = "file"
	ExtractionBackendFirestore ExtractionBackend = "firestore"
)

type Config struct {
	ProjectID         string
	Region            string
	LogLevel          string
	ListenAddr        string
	SiteOrigin        string
	StaticDir         string
	CommentsPath      string
	ExtractionsPath   string
	ExtractionBackend ExtractionBackend
	VertexModel       string
	CommentsEndpoint  string
	CommentsPostID    int
	ScrapeInterval    time.Duration
	HTTPTimeout       time.Duration
	ForceStamp        bool
}

func New() *Config {
	return &Config{
		ProjectID:         os.Getenv("PROJECTID"),
		Region:            getEnv("REGION", "us-central1"),
		LogLevel:          os.Getenv("LOGLEVEL"),
		ListenAddr:        getEnv("LISTENADDR", ":8080"),
		SiteOrigin:        strings.TrimRight(getEnv("SITEORIGIN", "http://localhost:8080"), "/"),
		StaticDir:         getEnv("STATICDIR", "static"),
		CommentsPath:      getEnv("COMMENTSPATH", "scrape/comments.jsonl"),
		ExtractionsPath:   getEnv("EXTRACTIONSPATH", "scrape/extracted.jsonl"),
		ExtractionBackend: getExtractionBackend(os.Getenv("EXTRACTIONBACKEND")),
		VertexModel:       getEnv("VERTEXMODEL", "gemini-2.5-flash"),
		CommentsEndpoint:  getEnv("COMMENTSENDPOINT", "https://www.doctorofcredit.com/wp-admin/admin-ajax.php"),
		CommentsPostID:    getInt("COMMENTSPOSTID", 24906),
		ScrapeInterval:    getDuration("SCRAPEINTERVAL", time.Second),
		HTTPTimeout:       getDuration("HTTPTIMEOUT", 15*time.Second),
		ForceStamp:        os.Getenv("REFRESH_FORCE_STAMP") == "true",
	}
}

func getExtractionBackend(backend string) ExtractionBackend {
	switch strings.ToLower(backend) {
	case "firestore":
		return ExtractionBackendFirestore
	default: // "file"
		return ExtractionBackendFile
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
