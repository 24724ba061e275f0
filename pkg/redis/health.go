package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthCheck represents the health check response for Redis
type HealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// Health pings Redis and reports the connection pool state
func (c *Client) Health(ctx context.Context) HealthCheck {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	details := map[string]string{
		"host":     c.config.Host,
		"port":     strconv.Itoa(c.config.Port),
		"database": strconv.Itoa(c.config.Database),
	}

	start := time.Now()
	if err := c.Ping(ctx); err != nil {
		details["message"] = err.Error()
		return HealthCheck{Status: StatusDown, Details: details}
	}
	details["ping_latency"] = time.Since(start).String()

	if stats := c.Stats(); stats != nil {
		details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
		details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
		details["timeouts"] = strconv.FormatUint(uint64(stats.Timeouts), 10)
	}

	return HealthCheck{Status: StatusUp, Details: details}
}
