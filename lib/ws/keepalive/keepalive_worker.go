package keepaliveworker

import (
	"context"
	"time"

	baseworker "smartjob-backend/lib/utils/base-worker"
	connectionhub "smartjob-backend/lib/ws/hub/connection-hub"
)

const (
	firstRunDelay = 30 * time.Second
	runInterval   = 30 * time.Second
)

// StartWorker pings the websocket clients of the hub until ctx is done.
func StartWorker(ctx context.Context, hub connectionhub.Provider) {
	worker := baseworker.NewInstance("ws-keepalive", firstRunDelay, runInterval)
	go worker.Run(ctx, func(ctx context.Context) {
		if dropped := hub.Ping(); dropped > 0 {
			worker.GetLogger().WithField("dropped", dropped).Info("dead ws clients removed")
		}
	})
}
