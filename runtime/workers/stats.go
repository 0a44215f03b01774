package workers

import (
	"chat-gateway/runtime"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

type NodeStatsReader interface {
	Stats() runtime.NodeStats
}

// StatsWorker periodically logs the node's room and session counts along
// with the process' own memory and cpu usage.
type StatsWorker struct {
	log      *slog.Logger
	node     NodeStatsReader
	interval time.Duration
}

func NewStatsWorker(log *slog.Logger, node NodeStatsReader, interval time.Duration) *StatsWorker {
	return &StatsWorker{log: log, node: node, interval: interval}
}

func (w *StatsWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			stats := w.node.Stats()
			attrs := []any{
				"rooms", stats.Rooms,
				"members", stats.Members,
				"sessions", stats.Sessions,
				"online", stats.Online,
			}
			rss, cpu, status, err := selfStats(p)
			if err != nil {
				w.log.Debug("Failed to collect process stats", "error", err)
			} else {
				attrs = append(attrs, "rss", rss, "cpu_percent", cpu, "status", status)
			}
			w.log.Info("Node stats", attrs...)
		}
	}
}

func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}
	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
