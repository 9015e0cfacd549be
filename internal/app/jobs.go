package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@every 60s", func() {
		a.SchedCatalogStatsTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@daily", func() {
		a.SchedHeartbeatTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}
}

// SchedHeartbeatTask logs a daily liveness line with the process uptime.
func (a *Application) SchedHeartbeatTask() {
	zap.L().Info("heartbeat",
		zap.String("appid", a.appConfig.System.Appid),
		zap.Duration("uptime", time.Since(a.startedAt)))
}

// SchedCatalogStatsTask logs the catalog size periodically.
func (a *Application) SchedCatalogStatsTask() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	total, err := a.store.Count(ctx)
	if err != nil {
		zap.L().Warn("catalog stats query failed", zap.Error(err))
		return
	}
	zap.L().Debug("catalog stats", zap.Int64("products", total))
}
