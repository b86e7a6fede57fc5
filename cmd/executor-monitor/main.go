package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	// Application
	"github.com/dreschagin/executor-monitor/internal/application/usecase"

	// Domain
	domainInstr "github.com/dreschagin/executor-monitor/internal/domain/instrumentation"
	"github.com/dreschagin/executor-monitor/internal/domain/service"

	// Infrastructure
	infraInstr "github.com/dreschagin/executor-monitor/internal/infrastructure/instrumentation"
	"github.com/dreschagin/executor-monitor/internal/infrastructure/memorymanager"

	// Shared
	"github.com/dreschagin/executor-monitor/pkg/config"
	"github.com/dreschagin/executor-monitor/pkg/logger"
)

func main() {
	// 1. Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Инициализируем logger
	log := logger.New(os.Getenv("LOG_LEVEL"))
	log.Info("Starting Executor Monitor", "executor_id", cfg.Executor.ID)

	// 3. Dependency Injection - Infrastructure Layer

	// Счетчики пулов памяти worker'а
	memoryManager := memorymanager.New(
		cfg.Memory.OnHeapCapacityBytes,
		cfg.Memory.OffHeapCapacityBytes,
	)

	heapStats := infraInstr.NewRuntimeHeapStats()

	bufferPools, err := infraInstr.NewProcessBufferPools()
	if err != nil {
		log.Error("Failed to initialize buffer pool reader", err)
		os.Exit(1)
	}

	// Чтение процессорного времени: procfs (gopsutil) или rusage
	var cpuReader domainInstr.ProcessCPU
	switch cfg.CPU.Reader {
	case "rusage":
		cpuReader = infraInstr.NewRusageCPU()
	default:
		readerImpl, initErr := infraInstr.NewGopsutilCPU()
		if initErr != nil {
			log.Error("Failed to initialize CPU time reader", initErr)
			os.Exit(1)
		}
		cpuReader = readerImpl
	}
	log.Info("CPU time reader initialized", "reader", cfg.CPU.Reader)

	bundle := domainInstr.Bundle{
		Memory: memoryManager,
		Heap:   heapStats,
		Pools:  bufferPools,
		CPU:    cpuReader,
	}

	sampler := infraInstr.NewCPUUsageSampler(cpuReader, cfg.CPU.UsageScale)

	// 4. Dependency Injection - Domain Layer

	sources := service.NewMetricSourceRegistry()
	peakTracker := service.NewPeakTracker()
	cpuTracker := service.NewCPUUsageTracker()

	// 5. Dependency Injection - Application Layer (Use Cases)

	collectUC := usecase.NewCollectExecutorMetricsUseCase(
		sources,
		bundle,
		sampler,
		peakTracker,
		cpuTracker,
		log,
	)

	reportUC := usecase.NewGetExecutorReportUseCase(
		sources,
		peakTracker,
		cpuTracker,
		log,
	)

	registerUC := usecase.NewRegisterExecutorUseCase(peakTracker, cpuTracker, log)
	deregisterUC := usecase.NewDeregisterExecutorUseCase(peakTracker, cpuTracker, log)

	// 6. Регистрируем собственный процесс как executor

	executorID := cfg.Executor.ID
	registerUC.Execute(executorID)

	// 7. Запускаем фоновые процессы

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Сбор метрик на каждом тике
	go func() {
		ticker := time.NewTicker(cfg.Metrics.CollectionInterval)
		defer ticker.Stop()

		log.Info("Metrics collector started",
			"interval", cfg.Metrics.CollectionInterval.String())

		for {
			select {
			case <-ticker.C:
				if err := collectUC.Execute(ctx, executorID); err != nil {
					log.Error("Failed to collect metrics", err)
				}
			case <-ctx.Done():
				log.Info("Metrics collector stopped")
				return
			}
		}
	}()

	// Периодический отчет в лог
	go func() {
		ticker := time.NewTicker(cfg.Executor.ReportInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				report, err := reportUC.Execute(executorID)
				if err != nil {
					log.Error("Failed to build executor report", err)
					continue
				}
				log.Info("Executor report",
					"executor_id", report.ExecutorID,
					"cpu_average", fmt.Sprintf("%.2f", report.CPUAverage),
					"heap_peak", report.Peaks["HeapMemory"],
					"on_heap_execution_peak", report.Peaks["OnHeapExecutionMemory"],
					"recorded", report.Recorded)
			case <-ctx.Done():
				return
			}
		}
	}()

	// 8. Ожидаем сигнал для graceful shutdown

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Shutdown signal received, starting graceful shutdown...")

	cancel()
	deregisterUC.Execute(executorID)

	log.Info("Executor monitor stopped gracefully")
}
