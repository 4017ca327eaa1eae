package app

import (
	"errors"

	"github.com/Karthikeyanbk4067/FitX/internal/config"
	"github.com/Karthikeyanbk4067/FitX/internal/logger"
	"github.com/Karthikeyanbk4067/FitX/internal/provider"
	"github.com/Karthikeyanbk4067/FitX/internal/router"
	"github.com/Karthikeyanbk4067/FitX/internal/worker"
)

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config, mode string) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	container := provider.NewContainer(cfg)

	var services []Service

	// 初始化 HTTP 服务
	if mode == ModeAll || mode == ModeAPI {
		engine := router.SetupRouter(cfg, container)
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		httpService := NewHTTPService(addr, engine)
		services = append(services, httpService)
	}

	// 初始化 Worker 服务
	// 队列关闭时 all 模式仅跳过 worker，订单保持 Packed 状态。
	if mode == ModeAll || mode == ModeWorker {
		if !cfg.Queue.Enabled && mode == ModeAll {
			logger.Warnw("worker_skip_queue_disabled")
		} else {
			consumer := worker.NewConsumer(container)
			workerService, err := worker.NewService(&cfg.Queue, consumer)
			if err != nil {
				return nil, err
			}
			services = append(services, workerService)
		}
	}

	if len(services) == 0 {
		return nil, errors.New("no services initialized (check mode and config)")
	}

	return NewRunner(services...), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config, opts.Mode)
	if err != nil {
		return err
	}

	addr := opts.Config.Server.Host + ":" + opts.Config.Server.Port
	opts.Logger.Infow("app_start", "addr", addr, "mode", opts.Mode)
	return RunWithOptions(runner, opts)
}
