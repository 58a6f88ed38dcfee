package bot

import (
	"context"
	"time"

	"casino/domain/interfaces"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// StartCooldownSweep schedules a periodic purge of expired cooldown rows.
// Expired cooldowns are already treated as absent by reads; the sweep just
// keeps the table from growing without bound. Returns a stop function.
func (b *Bot) StartCooldownSweep(ctx context.Context, cooldownRepo interfaces.CooldownRepository, schedule string) (func(), error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		sweepCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		removed, err := cooldownRepo.PurgeExpired(sweepCtx, time.Now())
		if err != nil {
			log.WithError(err).Error("cooldown sweep failed")
			return
		}
		log.WithField("removed", removed).Info("cooldown sweep completed")
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	stop := func() {
		stopCtx := c.Stop()
		<-stopCtx.Done()
	}
	b.stopCooldownSweep = stop
	return stop, nil
}
