package middleware

import (
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Observe logs every handled update with its duration. Errors are
// also handled downstream by the update boundary; here they are only
// recorded against the update id.
func Observe(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			err := next(c)

			fields := []zap.Field{
				zap.Int("update_id", c.Update().ID),
				zap.Duration("took", time.Since(start)),
			}
			if sender := c.Sender(); sender != nil {
				fields = append(fields, zap.Int64("user_id", sender.ID))
			}

			if err != nil {
				logger.Error("update failed", append(fields, zap.Error(err))...)
			} else {
				logger.Debug("update handled", fields...)
			}
			return err
		}
	}
}
