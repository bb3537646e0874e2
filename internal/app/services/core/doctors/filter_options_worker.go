package doctors

import (
	"context"
	"doctor-finder-service/internal/app/config"
	"doctor-finder-service/internal/app/contracts"
	"doctor-finder-service/internal/pkg/constvars"
	"doctor-finder-service/internal/pkg/utils"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Worker periodically warms the unfiltered filter options. Only the instance
// holding the leader lock does the work on a given tick.
type Worker struct {
	log        *zap.Logger
	cfg        *config.InternalConfig
	locker     contracts.LockerService
	maintainer contracts.FilterOptionsMaintainer
	lockTTL    time.Duration
	cron       *cron.Cron
	runCtx     context.Context
	cancel     context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, maintainer contracts.FilterOptionsMaintainer) *Worker {
	return &Worker{
		log:        log,
		cfg:        cfg,
		locker:     lockerSvc,
		maintainer: maintainer,
		lockTTL:    constvars.LeaderLockTTL,
	}
}

// Start schedules the warmup. An invalid cron spec falls back to @hourly.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.App.FilterOptionsWorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("filteroptions.worker: failed to schedule with provided cron spec; falling back to @hourly", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@hourly", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels in-flight runs and waits for running jobs to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
	requestID := utils.GetRequestID(ctx)

	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyFilterOptionsLeader, w.lockTTL)
	if err != nil {
		w.log.Warn("filteroptions.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("filteroptions.worker: leader lock not acquired; another instance is running")
		return
	}
	defer w.locker.Unlock(context.WithoutCancel(ctx), constvars.RedisKeyFilterOptionsLeader, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go w.refreshLock(refreshCtx, token)

	_ = utils.LogOperation(w.log, "filteroptions.worker.warm", requestID, func() error {
		return w.maintainer.WarmFilterOptions(ctx)
	})
}

// refreshLock extends the leader lock at half its TTL until ctx is done.
func (w *Worker) refreshLock(ctx context.Context, token string) {
	tick := time.NewTicker(w.lockTTL / 2)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			w.log.Info("filteroptions.worker: refreshing leader lock TTL",
				zap.String(constvars.LoggingRedisKey, constvars.RedisKeyFilterOptionsLeader),
				zap.Duration(constvars.LoggingLockExpirationKey, w.lockTTL),
			)
			if err := w.locker.Refresh(ctx, constvars.RedisKeyFilterOptionsLeader, token, w.lockTTL); err != nil {
				w.log.Warn("filteroptions.worker: failed to refresh leader lock TTL", zap.Error(err))
			}
		}
	}
}
