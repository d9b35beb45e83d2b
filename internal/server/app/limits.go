package app

import (
	"net/http"
	"time"

	"github.com/iudanet/stendrelay/internal/server/middleware"
)

// limitRule ограничение частоты запросов для группы маршрутов
type limitRule struct {
	name   string
	rate   int
	window time.Duration
}

var (
	globalLimit    = limitRule{name: "global", rate: 1000, window: 10 * time.Minute}
	callbackLimit  = limitRule{name: "callback", rate: 10, window: time.Minute}
	checkcodeLimit = limitRule{name: "checkcode", rate: 10, window: time.Minute}
	ownLimit       = limitRule{name: "account-transferts", rate: 100, window: time.Minute}
	resetLimit     = limitRule{name: "reset", rate: 10, window: time.Minute}
	deleteLimit    = limitRule{name: "delete", rate: 10, window: time.Minute}
	createLimit    = limitRule{name: "create", rate: 150, window: time.Minute}
	listLimit      = limitRule{name: "list", rate: 10, window: 30 * time.Second}
)

// redisKeyPrefix префикс ключей лимитов в Redis
const redisKeyPrefix = "stendrelay:ratelimit:"

// limit возвращает middleware для правила.
// С Redis счетчики общие для всех реплик, без него живут в памяти процесса.
func (a *App) limit(rule limitRule) func(http.Handler) http.Handler {
	var limiter middleware.Limiter
	if a.redis != nil {
		limiter = middleware.NewRedisLimiter(a.redis, redisKeyPrefix, rule.rate, rule.window)
	} else {
		mem := middleware.NewRateLimiter(rule.rate, rule.window, a.logger)
		a.closers = append(a.closers, func() error {
			mem.Stop()
			return nil
		})
		limiter = mem
	}
	return middleware.RateLimit(rule.name, limiter, a.logger)
}
