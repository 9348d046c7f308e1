package health

import (
	"context"
	"errors"
	"net/http"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/roadbuddy/internal/pkg/database"
	"github.com/piresc/roadbuddy/internal/pkg/logger"
	"github.com/piresc/roadbuddy/internal/pkg/nats"
	"golang.org/x/sync/errgroup"
)

// BuildInfo is reported by /ping
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// NewPingHandler reads VERSION and GIT_COMMIT once at startup
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	info := BuildInfo{
		Version:     "development",
		GitCommit:   "unknown",
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}
	if v := os.Getenv("VERSION"); v != "" {
		info.Version = v
	}
	if v := os.Getenv("GIT_COMMIT"); v != "" {
		info.GitCommit = v
	}

	return func(c echo.Context) error {
		resp := info
		resp.ServerTime = time.Now()
		return c.JSON(http.StatusOK, resp)
	}
}

// Checker checks one dependency
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) CheckHealth(ctx context.Context) error { return f(ctx) }

// PostgresChecker pings the database pool
func PostgresChecker(client *database.PostgresClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if client == nil || client.GetDB() == nil {
			return errors.New("postgres client not configured")
		}
		return client.GetDB().PingContext(ctx)
	})
}

// RedisChecker pings redis
func RedisChecker(client *database.RedisClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}

// NATSChecker verifies the connection and that JetStream answers
func NATSChecker(client *nats.Client) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if client == nil || !client.IsConnected() {
			return errors.New("nats not connected")
		}
		_, err := client.ListStreams(ctx)
		return err
	})
}

// Service runs every registered checker
type Service struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	logger   *logger.ZapLogger
}

func NewService(l *logger.ZapLogger) *Service {
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Service{checkers: make(map[string]Checker), logger: l}
}

func (s *Service) AddChecker(name string, checker Checker) {
	s.mu.Lock()
	s.checkers[name] = checker
	s.mu.Unlock()
}

// Response is the body of /health/detailed
type Response struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CheckAll runs the checkers concurrently; one failure marks the whole
// service unhealthy
func (s *Service) CheckAll(ctx context.Context) Response {
	s.mu.RLock()
	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	s.mu.RUnlock()
	sort.Strings(names)

	results := make([]error, len(names))
	var g errgroup.Group
	for i, name := range names {
		i, name := i, name
		s.mu.RLock()
		checker := s.checkers[name]
		s.mu.RUnlock()
		g.Go(func() error {
			results[i] = checker.CheckHealth(ctx)
			return nil
		})
	}
	_ = g.Wait()

	resp := Response{
		Status:       "healthy",
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(names)),
	}
	for i, name := range names {
		if err := results[i]; err != nil {
			s.logger.Error("Health check failed", logger.String("dependency", name), logger.Err(err))
			resp.Dependencies[name] = DependencyInfo{Status: "unhealthy", Error: err.Error()}
			resp.Status = "unhealthy"
			continue
		}
		resp.Dependencies[name] = DependencyInfo{Status: "healthy"}
	}
	return resp
}

// RegisterHealthEndpoints mounts /ping, /health, /health/live,
// /health/ready and /health/detailed
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, service *Service) {
	e.GET("/ping", NewPingHandler(serviceName))

	g := e.Group("/health")
	g.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   serviceName,
			"timestamp": time.Now(),
		})
	})

	g.GET("/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{"status": "alive", "service": serviceName})
	})

	g.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		resp := service.CheckAll(ctx)
		resp.Service = serviceName
		if resp.Status != "healthy" {
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"status": "ready", "service": serviceName})
	})

	g.GET("/detailed", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		resp := service.CheckAll(ctx)
		resp.Service = serviceName
		resp.Version = version

		status := http.StatusOK
		if resp.Status != "healthy" {
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, resp)
	})
}
