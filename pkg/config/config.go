package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	OpenAI     OpenAIConfig
	Assembly   AssemblyAIConfig
	ElevenLabs ElevenLabsConfig
	RapidAPI   RapidAPIConfig
	Shotstack  ShotstackConfig
	Storage    StorageConfig
	Redis      RedisConfig
	Pipeline   PipelineConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// OpenAIConfig holds credentials for the language-model completion and
// audio transcription endpoints
type OpenAIConfig struct {
	APIKey             string
	BaseURL            string
	ChatModel          string
	InsightModel       string
	TranscriptionModel string
}

// AssemblyAIConfig holds the URL-based transcription backend configuration
type AssemblyAIConfig struct {
	APIKey  string
	BaseURL string
}

// ElevenLabsConfig holds the text-to-speech provider configuration
type ElevenLabsConfig struct {
	APIKey  string
	BaseURL string
	ModelID string
}

// RapidAPIConfig holds the media-link resolution service configuration.
// One key covers both downloader hosts.
type RapidAPIConfig struct {
	APIKey              string
	YouTubeBaseURL      string
	YouTubeVideoBaseURL string
	TikTokBaseURL       string
}

// ShotstackConfig holds the remote video renderer configuration
type ShotstackConfig struct {
	APIKey  string
	BaseURL string
}

// StorageConfig holds object storage configuration for stable audio URLs
type StorageConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool
	PublicURL       string
}

// RedisConfig holds optional Redis cache configuration.
// When Host is empty the service falls back to the in-memory store.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// PipelineConfig holds the pipeline's tunable limits
type PipelineConfig struct {
	MaxVideoDurationSeconds int
	MaxSpeechChars          int
	ClipLengthSeconds       float64
	RenderPollInterval      time.Duration
	RenderPollMaxAttempts   int
	MetadataCacheTTL        time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  []string{getEnv("ALLOWED_ORIGINS", "http://localhost:3000")},
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		OpenAI: OpenAIConfig{
			APIKey:             getEnv("OPENAI_API_KEY", ""),
			BaseURL:            getEnv("OPENAI_API_URL", "https://api.openai.com"),
			ChatModel:          getEnv("OPENAI_CHAT_MODEL", "gpt-4.1-mini"),
			InsightModel:       getEnv("OPENAI_INSIGHT_MODEL", "gpt-4o-mini"),
			TranscriptionModel: getEnv("OPENAI_TRANSCRIPTION_MODEL", "whisper-1"),
		},
		Assembly: AssemblyAIConfig{
			APIKey:  getEnv("ASSEMBLYAI_API_KEY", ""),
			BaseURL: getEnv("ASSEMBLYAI_API_URL", ""),
		},
		ElevenLabs: ElevenLabsConfig{
			APIKey:  getEnv("ELEVENLABS_API_KEY", ""),
			BaseURL: getEnv("ELEVENLABS_API_URL", "https://api.elevenlabs.io"),
			ModelID: getEnv("ELEVENLABS_MODEL_ID", "eleven_multilingual_v2"),
		},
		RapidAPI: RapidAPIConfig{
			APIKey:              getEnv("RAPID_API_KEY", ""),
			YouTubeBaseURL:      getEnv("RAPID_API_YOUTUBE_URL", "https://youtube-mp3-audio-video-downloader.p.rapidapi.com"),
			YouTubeVideoBaseURL: getEnv("RAPID_API_YOUTUBE_VIDEO_URL", "https://youtube-video-fast-downloader-24-7.p.rapidapi.com"),
			TikTokBaseURL:       getEnv("RAPID_API_TIKTOK_URL", "https://tiktok-video-audio-downloader-api.p.rapidapi.com"),
		},
		Shotstack: ShotstackConfig{
			APIKey:  getEnv("SHOTSTACK_API_KEY", ""),
			BaseURL: getEnv("SHOTSTACK_API_URL", "https://api.shotstack.io/stage"),
		},
		Storage: StorageConfig{
			Endpoint:        getEnv("STORAGE_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
			SecretAccessKey: getEnv("STORAGE_SECRET_KEY", "minioadmin"),
			BucketName:      getEnv("STORAGE_BUCKET", "content-remix"),
			UseSSL:          getEnvAsBool("STORAGE_USE_SSL", false),
			PublicURL:       getEnv("STORAGE_PUBLIC_URL", ""),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Pipeline: PipelineConfig{
			MaxVideoDurationSeconds: getEnvAsInt("PIPELINE_MAX_VIDEO_SECONDS", 60),
			MaxSpeechChars:          getEnvAsInt("PIPELINE_MAX_SPEECH_CHARS", 5000),
			ClipLengthSeconds:       getEnvAsFloat("PIPELINE_CLIP_LENGTH_SECONDS", 5),
			RenderPollInterval:      getEnvAsDuration("PIPELINE_RENDER_POLL_INTERVAL", "5s"),
			RenderPollMaxAttempts:   getEnvAsInt("PIPELINE_RENDER_POLL_MAX_ATTEMPTS", 30),
			MetadataCacheTTL:        getEnvAsDuration("PIPELINE_METADATA_CACHE_TTL", "10m"),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.Shotstack.APIKey == "" {
		return fmt.Errorf("SHOTSTACK_API_KEY is required")
	}
	return nil
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// UseRedisCache reports whether a Redis cache was configured
func (c *Config) UseRedisCache() bool {
	return c.Redis.Host != ""
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
