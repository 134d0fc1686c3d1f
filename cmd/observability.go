package main

import (
	"context"

	"github.com/KasumiMercury/primind-study-scheduler/internal/config"
	"github.com/KasumiMercury/primind-study-scheduler/internal/observability"
	"github.com/KasumiMercury/primind-study-scheduler/internal/observability/logging"
)

const serviceModule = logging.Module("study-scheduler")

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	env := logging.EnvDev
	if cfg.IsProduction() {
		env = logging.EnvProd
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     cfg.ServiceName,
			Version:  Version,
			Revision: Revision,
		},
		Environment:   env,
		LogLevel:      cfg.LogLevel,
		SamplingRate:  1.0,
		DefaultModule: serviceModule,
	})
}
