package app

import (
	"os"
	"time"

	"github.com/Karthikeyanbk4067/FitX/internal/config"
	"github.com/Karthikeyanbk4067/FitX/internal/logger"

	"go.uber.org/zap"
)

// 运行模式：all 同进程跑 API 与发货 worker，api/worker 可拆分部署。
const (
	ModeAll    = "all"
	ModeAPI    = "api"
	ModeWorker = "worker"
)

// Options 应用启动选项
type Options struct {
	Config          *config.Config
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
	Mode            string
}

func normalizeOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = defaultStopTimeout
	}
	if opts.Mode == "" {
		opts.Mode = ModeAll
	}
	return opts
}
