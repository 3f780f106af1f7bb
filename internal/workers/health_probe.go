// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
)

// DefaultHealthInterval is used when a non-positive interval is configured.
const DefaultHealthInterval = 10 * time.Second

// healthProbe pings the database on every tick and reports the result.
type healthProbe struct {
	db       Pinger
	reporter StatusReporter
	interval time.Duration
	logger   *logger.Logger

	// serving is the last reported status; nil before the first probe.
	serving *bool
}

func NewHealthProbe(db Pinger, reporter StatusReporter, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = DefaultHealthInterval
	}
	return &healthProbe{
		db:       db,
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

// Run probes immediately and then once per interval until ctx is canceled.
func (p *healthProbe) Run(ctx context.Context) {
	p.logger.Info().Dur("interval", p.interval).Msg("database health probe started")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("database health probe stopped")
			return
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

func (p *healthProbe) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	err := p.db.PingContext(pingCtx)
	if ctx.Err() != nil {
		return
	}

	serving := err == nil
	if p.serving == nil || *p.serving != serving {
		if serving {
			p.logger.Info().Msg("database is reachable")
		} else {
			p.logger.Err(err).Str("func", "*healthProbe.probe").Msg("database is unreachable")
		}
	}
	p.serving = &serving

	p.reporter.SetServing(serving)
}
