package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type Config struct {
	Executor ExecutorConfig
	Metrics  MetricsConfig
	CPU      CPUConfig
	Memory   MemoryConfig
}

type ExecutorConfig struct {
	ID             string
	ReportInterval time.Duration
}

type MetricsConfig struct {
	CollectionInterval time.Duration
}

type CPUConfig struct {
	// Reader выбирает реализацию чтения процессорного времени: procfs | rusage
	Reader string
	// UsageScale - множитель перевода доли CPU в проценты
	// Вынесен в конфигурацию, потому что ожидаемая нормализация у потребителей различается
	UsageScale float64
}

type MemoryConfig struct {
	OnHeapCapacityBytes  int64
	OffHeapCapacityBytes int64
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	collectionInterval, err := parseDuration(getEnv("METRICS_COLLECTION_INTERVAL", "2s"))
	if err != nil {
		return nil, fmt.Errorf("invalid METRICS_COLLECTION_INTERVAL: %w", err)
	}

	reportInterval, err := parseDuration(getEnv("REPORT_INTERVAL", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_INTERVAL: %w", err)
	}

	usageScale, err := strconv.ParseFloat(getEnv("CPU_USAGE_SCALE", "100"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid CPU_USAGE_SCALE: %w", err)
	}
	if usageScale <= 0 {
		return nil, fmt.Errorf("CPU_USAGE_SCALE must be positive, got %v", usageScale)
	}

	onHeapMB, err := strconv.Atoi(getEnv("MEMORY_ON_HEAP_MB", "512"))
	if err != nil {
		return nil, fmt.Errorf("invalid MEMORY_ON_HEAP_MB: %w", err)
	}

	offHeapMB, err := strconv.Atoi(getEnv("MEMORY_OFF_HEAP_MB", "128"))
	if err != nil {
		return nil, fmt.Errorf("invalid MEMORY_OFF_HEAP_MB: %w", err)
	}

	reader := getEnv("CPU_READER", "procfs")
	if reader != "procfs" && reader != "rusage" {
		return nil, fmt.Errorf("invalid CPU_READER %q: expected procfs or rusage", reader)
	}

	cfg := &Config{
		Executor: ExecutorConfig{
			ID:             getEnv("EXECUTOR_ID", "executor-"+uuid.NewString()),
			ReportInterval: reportInterval,
		},
		Metrics: MetricsConfig{
			CollectionInterval: collectionInterval,
		},
		CPU: CPUConfig{
			Reader:     reader,
			UsageScale: usageScale,
		},
		Memory: MemoryConfig{
			OnHeapCapacityBytes:  int64(onHeapMB) * 1024 * 1024,
			OffHeapCapacityBytes: int64(offHeapMB) * 1024 * 1024,
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %s", raw)
	}
	return d, nil
}
