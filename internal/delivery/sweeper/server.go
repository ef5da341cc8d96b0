// Package sweeper runs the periodic modifier lifecycle sweep.
package sweeper

import (
	"context"
	"log/slog"
	"time"

	"backoffice/config"
	"backoffice/internal/delivery"
	"backoffice/internal/usecase"

	"go.uber.org/fx"
)

type sweeperServer struct {
	cfg        *config.Config
	logger     *slog.Logger
	discountUC usecase.DiscountUsecase
	saleUC     usecase.SaleUsecase
	stopped    chan struct{}
}

// ServerParams holds dependencies for the sweeper
type ServerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	DiscountUC usecase.DiscountUsecase
	SaleUC     usecase.SaleUsecase
}

// NewServer creates the lifecycle sweeper. Each tick walks every live
// discount and sale, stamping open windows and tearing down expired ones.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &sweeperServer{
		cfg:        params.Cfg,
		logger:     params.Logger,
		discountUC: params.DiscountUC,
		saleUC:     params.SaleUC,
		stopped:    make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve runs the sweep loop until the context is cancelled
func (s *sweeperServer) Serve(ctx context.Context) error {
	interval := s.cfg.Sweep.Interval
	s.logger.Info("Starting lifecycle sweeper", slog.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopped:
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep runs one pass over both modifier families. A failed pass is logged
// and retried on the next tick, so errors never stop the loop.
func (s *sweeperServer) sweep(ctx context.Context) {
	now := time.Now().UTC()

	if report, err := s.discountUC.Sweep(ctx, now); err != nil {
		s.logger.Error("Discount sweep failed", slog.String("error", err.Error()))
	} else {
		s.logReport("discount", report)
	}

	if report, err := s.saleUC.Sweep(ctx, now); err != nil {
		s.logger.Error("Sale sweep failed", slog.String("error", err.Error()))
	} else {
		s.logReport("sale", report)
	}
}

func (s *sweeperServer) logReport(kind string, report *usecase.SweepReport) {
	if report.Applied == 0 && report.Cleared == 0 && len(report.Failures) == 0 {
		return
	}

	s.logger.Info("Sweep pass finished",
		slog.String("kind", kind),
		slog.Int("applied", report.Applied),
		slog.Int("cleared", report.Cleared),
		slog.Int("failures", len(report.Failures)),
	)
}

// stop signals the sweep loop to exit
func (s *sweeperServer) stop(ctx context.Context) error {
	s.logger.Info("Shutting down lifecycle sweeper")
	close(s.stopped)

	return nil
}
