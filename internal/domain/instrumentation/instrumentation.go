package instrumentation

import "errors"

// ErrUnavailable возвращается, когда инструментальная возможность недоступна
// на этой платформе или в этой конфигурации. Вызывающая сторона подставляет
// значение по умолчанию (обычно 0) и продолжает сбор остальных метрик
var ErrUnavailable = errors.New("instrumentation capability unavailable")

// MemoryManager определяет интерфейс к счетчикам пулов памяти worker'а (Port)
// Реализация будет в Infrastructure слое
type MemoryManager interface {
	// OnHeapExecutionMemoryUsed возвращает занятую execution-память в куче
	OnHeapExecutionMemoryUsed() int64

	// OffHeapExecutionMemoryUsed возвращает занятую execution-память вне кучи
	OffHeapExecutionMemoryUsed() int64

	// OnHeapStorageMemoryUsed возвращает занятую storage-память в куче
	OnHeapStorageMemoryUsed() int64

	// OffHeapStorageMemoryUsed возвращает занятую storage-память вне кучи
	OffHeapStorageMemoryUsed() int64
}

// HeapStats определяет интерфейс к показателям памяти рантайма (Port)
type HeapStats interface {
	// HeapUsed возвращает занятую память кучи в байтах
	HeapUsed() (int64, error)

	// OffHeapUsed возвращает память рантайма вне кучи в байтах
	OffHeapUsed() (int64, error)
}

// BufferPools определяет интерфейс к пулам буферов процесса (Port)
type BufferPools interface {
	// DirectPoolUsed возвращает размер direct-буферов в байтах
	DirectPoolUsed() (int64, error)

	// MappedPoolUsed возвращает размер отображенных в память регионов в байтах
	MappedPoolUsed() (int64, error)
}

// ProcessCPU определяет интерфейс к учету процессорного времени процесса (Port)
type ProcessCPU interface {
	// CPUTime возвращает суммарное процессорное время процесса в наносекундах
	CPUTime() (int64, error)
}

// UsageSampler определяет интерфейс замера загрузки CPU в процентах (Port)
// Каждый вызов возвращает загрузку за интервал с предыдущего вызова
type UsageSampler interface {
	Sample() (float64, error)
}

// Bundle группирует инструментальные возможности для построения снапшота
// nil-поле означает, что возможность недоступна
type Bundle struct {
	Memory MemoryManager
	Heap   HeapStats
	Pools  BufferPools
	CPU    ProcessCPU
}
