package usecase

import (
	"context"
	"time"

	"identity-service/internal/data/repository"

	"go.uber.org/zap"
)

// StartOTPJanitor purges OTP records past their deletion horizon on a
// fixed interval, independent of request traffic. Runs until the context
// is cancelled.
func StartOTPJanitor(ctx context.Context, otpRepo repository.OTPRepository, interval time.Duration, log *zap.Logger) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				purged, err := otpRepo.PurgeExpired(ctx)
				if err != nil {
					log.Error("OTP purge failed", zap.Error(err))
					continue
				}
				if purged > 0 {
					log.Info("Purged expired OTP records", zap.Int64("count", purged))
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}
