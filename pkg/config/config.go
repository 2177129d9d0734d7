package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// AppConfig 全局配置实例
var AppConfig *Config

// Config 应用配置结构
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Media    MediaConfig    `yaml:"media"`
	Preview  PreviewConfig  `yaml:"preview"`
	Security SecurityConfig `yaml:"security"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port         string        `yaml:"port" env:"SERVER_PORT" default:"5000"`
	Mode         string        `yaml:"mode" env:"GIN_MODE" default:"debug"`
	ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
	WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
}

// MongoConfig MongoDB配置
type MongoConfig struct {
	URI         string            `yaml:"uri" env:"MONGODB_URI"`
	Database    string            `yaml:"database" default:"pet-blog"`
	Collections map[string]string `yaml:"collections"`
}

// MediaConfig 对象存储(媒体托管)配置
type MediaConfig struct {
	Endpoint        string `yaml:"endpoint" env:"TOS_ENDPOINT"`
	Region          string `yaml:"region" env:"TOS_REGION"`
	AccessKeyID     string `yaml:"access_key_id" env:"TOS_ACCESS_KEY_ID"`
	AccessKeySecret string `yaml:"access_key_secret" env:"TOS_ACCESS_KEY_SECRET"`
	BucketName      string `yaml:"bucket_name" env:"TOS_BUCKET_NAME"`
	BaseURL         string `yaml:"base_url" env:"TOS_BASE_URL"`
	Timeout         int    `yaml:"timeout" default:"30"` // 超时时间(秒)
}

// PreviewConfig 链接预览抓取配置
type PreviewConfig struct {
	Timeout     time.Duration `yaml:"timeout" default:"10s"`
	MaxBodySize int64         `yaml:"max_body_size" default:"2097152"` // 下载体积上限(字节)
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LogConfig 日志配置
type LogConfig struct {
	Dir           string        `yaml:"dir" default:"logs"`
	SlowThreshold time.Duration `yaml:"slow_threshold" default:"500ms"`
}

// InitConfig 初始化配置
func InitConfig() error {
	// 加载环境变量
	if err := loadEnv(); err != nil {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	// 创建默认配置
	config := &Config{}
	setDefaults(config)

	// 尝试从配置文件加载
	if err := loadFromFile(config); err != nil {
		log.Printf("Warning: failed to load config file: %v", err)
	}

	// 从环境变量覆盖配置
	loadFromEnv(config)

	// 验证配置
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	AppConfig = config
	return nil
}

// loadEnv 加载环境变量文件
func loadEnv() error {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	envFiles := []string{
		".env",
		fmt.Sprintf(".env.%s", env),
		".env.local",
	}

	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			if err := godotenv.Load(file); err != nil {
				return err
			}
		}
	}

	return nil
}

// setDefaults 设置默认值
func setDefaults(config *Config) {
	config.Server.Port = "5000"
	config.Server.Mode = "debug"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second

	config.Mongo.URI = "mongodb://localhost:27017"
	config.Mongo.Database = "pet-blog"
	config.Mongo.Collections = map[string]string{
		"posts":  "posts",
		"albums": "albums",
	}

	config.Media.Timeout = 30

	config.Preview.Timeout = 10 * time.Second
	config.Preview.MaxBodySize = 2 << 20

	config.Log.Dir = "logs"
	config.Log.SlowThreshold = 500 * time.Millisecond
}

// loadFromFile 从配置文件加载
func loadFromFile(config *Config) error {
	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config/config.yaml"
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, config)
}

// loadFromEnv 从环境变量加载
func loadFromEnv(config *Config) {
	// Server配置
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = port
	} else if port := os.Getenv("PORT"); port != "" {
		config.Server.Port = port
	}
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		config.Server.Mode = mode
	}

	// MongoDB配置
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		config.Mongo.URI = uri
	}
	if db := os.Getenv("MONGODB_DATABASE"); db != "" {
		config.Mongo.Database = db
	}

	// 媒体托管配置
	if endpoint := os.Getenv("TOS_ENDPOINT"); endpoint != "" {
		config.Media.Endpoint = endpoint
	}
	if region := os.Getenv("TOS_REGION"); region != "" {
		config.Media.Region = region
	}
	if ak := os.Getenv("TOS_ACCESS_KEY_ID"); ak != "" {
		config.Media.AccessKeyID = ak
	}
	if sk := os.Getenv("TOS_ACCESS_KEY_SECRET"); sk != "" {
		config.Media.AccessKeySecret = sk
	}
	if bucket := os.Getenv("TOS_BUCKET_NAME"); bucket != "" {
		config.Media.BucketName = bucket
	}
	if baseURL := os.Getenv("TOS_BASE_URL"); baseURL != "" {
		config.Media.BaseURL = baseURL
	}

	// 链接预览配置
	if timeoutStr := os.Getenv("PREVIEW_TIMEOUT"); timeoutStr != "" {
		if timeout, err := time.ParseDuration(timeoutStr); err == nil {
			config.Preview.Timeout = timeout
		}
	}
	if sizeStr := os.Getenv("PREVIEW_MAX_BODY_SIZE"); sizeStr != "" {
		if size, err := strconv.ParseInt(sizeStr, 10, 64); err == nil && size > 0 {
			config.Preview.MaxBodySize = size
		}
	}

	// CORS配置
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		config.Security.AllowedOrigins = strings.Split(origins, ",")
	}
}

// validateConfig 验证配置
func validateConfig(config *Config) error {
	if config.Mongo.URI == "" {
		return fmt.Errorf("mongodb URI is required")
	}

	// 验证端口号
	if _, err := strconv.Atoi(strings.TrimPrefix(config.Server.Port, ":")); err != nil {
		return fmt.Errorf("invalid server port: %s", config.Server.Port)
	}

	// 验证模式
	validModes := []string{"debug", "release", "test"}
	modeValid := false
	for _, mode := range validModes {
		if config.Server.Mode == mode {
			modeValid = true
			break
		}
	}
	if !modeValid {
		return fmt.Errorf("invalid server mode: %s", config.Server.Mode)
	}

	if config.Preview.Timeout <= 0 {
		return fmt.Errorf("preview timeout must be positive")
	}
	if config.Preview.MaxBodySize <= 0 {
		return fmt.Errorf("preview max body size must be positive")
	}

	return nil
}

// GetConfig 获取配置实例
func GetConfig() *Config {
	if AppConfig == nil {
		log.Fatal("config not initialized, call InitConfig() first")
	}
	return AppConfig
}

// IsProduction 判断是否为生产环境
func IsProduction() bool {
	return AppConfig != nil && AppConfig.Server.Mode == "release"
}
