package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log    Log    `yaml:"log"`
	Server Server `yaml:"server"`
	OpenAI OpenAI `yaml:"openai"`
	Qdrant Qdrant `yaml:"qdrant"`
	Memo   Memo   `yaml:"memo"`
	Ingest Ingest `yaml:"ingest"`
}

type OpenAI struct {
	Chat      ModelConfig `yaml:"chat" validate:"required"`
	Embedding ModelConfig `yaml:"embedding" validate:"required"`
}

type ModelConfig struct {
	// OpenAI-compatible base url, empty for the default endpoint
	BaseURL string `yaml:"base_url" example:"https://api.openai.com/v1"`
	// API token
	Token string `yaml:"token" example:"sk-proj-abc123456789DEF789ghi012JKL345mno678PQR901stu234VWX" validate:"required"`
	// Model name
	Model string `yaml:"model" example:"gpt-4o"`
}

type Qdrant struct {
	// Qdrant REST endpoint
	URL string `yaml:"url" example:"https://xyz.cloud.qdrant.io:6333" validate:"required"`
	// Qdrant API key, empty for unauthenticated local instances
	APIKey string `yaml:"api_key"`
	// Collection holding the tax/legal knowledge chunks
	Collection string `yaml:"collection" example:"tax_memo_production"`
}

type Server struct {
	// Listen address of the HTTP API
	Addr string `yaml:"addr" example:":8000"`
	// Origins allowed by CORS
	CORSOrigins []string `yaml:"cors_origins" example:"http://localhost:3000"`
}

type Memo struct {
	// Chunks retrieved per section query
	TopK int `yaml:"top_k"`
	// Sections generated in parallel; 1 preserves strict plan order
	MaxParallelSections int `yaml:"max_parallel_sections"`
	// Timeout of a single similarity search
	RetrievalTimeout time.Duration `yaml:"retrieval_timeout"`
	// Timeout of a single completion call
	GenerationTimeout time.Duration `yaml:"generation_timeout"`
}

type Ingest struct {
	// Directory scanned for source documents
	DocumentsDir string `yaml:"documents_dir"`
	// Chunk size in characters
	ChunkSize int `yaml:"chunk_size"`
	// Overlap between adjacent chunks
	ChunkOverlap int `yaml:"chunk_overlap"`
}

type Log struct {
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	if result.Server.Addr == "" {
		result.Server.Addr = ":8000"
	}
	if result.OpenAI.Chat.Model == "" {
		result.OpenAI.Chat.Model = "gpt-4o"
	}
	if result.OpenAI.Embedding.Model == "" {
		result.OpenAI.Embedding.Model = "text-embedding-3-small"
	}
	if result.Qdrant.Collection == "" {
		result.Qdrant.Collection = "tax_memo_production"
	}
	if result.Memo.TopK <= 0 {
		result.Memo.TopK = 3
	}
	if result.Memo.MaxParallelSections <= 0 {
		result.Memo.MaxParallelSections = 1
	}
	if result.Memo.RetrievalTimeout <= 0 {
		result.Memo.RetrievalTimeout = 30 * time.Second
	}
	if result.Memo.GenerationTimeout <= 0 {
		result.Memo.GenerationTimeout = 60 * time.Second
	}
	if result.Ingest.DocumentsDir == "" {
		result.Ingest.DocumentsDir = "documents"
	}
	if result.Ingest.ChunkSize <= 0 {
		result.Ingest.ChunkSize = 1000
	}
	if result.Ingest.ChunkOverlap <= 0 {
		result.Ingest.ChunkOverlap = 200
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}
