// Package monitoring exposes host and store statistics for the admin
// corner of the dashboard: a JSON snapshot endpoint and a websocket feed
// that pushes a fresh snapshot every few seconds.
package monitoring

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

type Collector struct {
	dbPath    string
	startedAt time.Time
	upgrader  websocket.Upgrader
}

type Stats struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryUsed    string  `json:"memory_used"`
	MemoryTotal   string  `json:"memory_total"`
	DiskPercent   float64 `json:"disk_percent"`
	DBSize        string  `json:"db_size"`
	Uptime        string  `json:"uptime"`
	Timestamp     string  `json:"timestamp"`
}

func NewCollector(dbPath string) *Collector {
	return &Collector{
		dbPath:    dbPath,
		startedAt: time.Now(),
		upgrader: websocket.Upgrader{
			// Same-origin dashboard only; CORS is enforced upstream.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (c *Collector) Collect() Stats {
	stats := Stats{
		DBSize:    c.dbSize(),
		Uptime:    formatUptime(time.Since(c.startedAt)),
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		stats.CPUPercent = percents[0]
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemoryPercent = vm.UsedPercent
		stats.MemoryUsed = formatBytes(vm.Used)
		stats.MemoryTotal = formatBytes(vm.Total)
	}

	if du, err := disk.Usage("/"); err == nil {
		stats.DiskPercent = du.UsedPercent
	}

	return stats
}

// StatsHandler serves a one-shot JSON snapshot.
func (c *Collector) StatsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c.Collect())
}

// WSHandler upgrades the connection and pushes a snapshot every 5 seconds
// until the client goes away.
func (c *Collector) WSHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := c.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Monitoring] websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	if err := conn.WriteJSON(c.Collect()); err != nil {
		return
	}

	for range ticker.C {
		if err := conn.WriteJSON(c.Collect()); err != nil {
			return
		}
	}
}

func (c *Collector) dbSize() string {
	info, err := os.Stat(c.dbPath)
	if err != nil {
		return "unknown"
	}
	return formatBytes(uint64(info.Size()))
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}

func formatUptime(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm %ds", m, int(d.Seconds())%60)
}
