package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mkovacevic/fitstats/internal"
	"github.com/mkovacevic/fitstats/internal/config"
	"github.com/mkovacevic/fitstats/internal/logging"
	"github.com/mkovacevic/fitstats/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	if cfg.LogsPath != "" {
		logsDir := filepath.Dir(cfg.LogsPath)
		dirExists, err := pkg.PathExists(logsDir, true)
		if err != nil {
			panic(fmt.Sprintf("check logs dir %s: %s", logsDir, err))
		}
		if !dirExists {
			if err := os.MkdirAll(logsDir, 0o755); err != nil {
				panic(fmt.Sprintf("create logs dir %s: %s", logsDir, err))
			}
		}
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "fitstats-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	adminUsername := os.Getenv("FITSTATS_ADMIN_USERNAME")
	adminPasswordHash := os.Getenv("FITSTATS_ADMIN_PASSWORD_HASH")
	if adminPasswordHash == "" {
		// plain password as a fallback, hashed right away
		if adminPassword := os.Getenv("FITSTATS_ADMIN_PASSWORD"); adminPassword != "" {
			adminPasswordHash, err = pkg.HashPassword(adminPassword)
			if err != nil {
				log.Fatalf("hash admin password: %s", err)
			}
		}
	}
	if adminUsername == "" || adminPasswordHash == "" {
		log.Fatalf("admin username and password not set. use FITSTATS_ADMIN_USERNAME and FITSTATS_ADMIN_PASSWORD_HASH")
	}

	mobileAppSecret := os.Getenv("FITSTATS_APP_SECRET")
	if mobileAppSecret == "" {
		log.Errorf("mobile app secret not set. use FITSTATS_APP_SECRET")
	}

	redisPassword := os.Getenv("FITSTATS_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use FITSTATS_REDIS_PASS")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			MobileAppSecret:         mobileAppSecret,
			VersionInfo:             versionInfo,
			AdminUsername:           adminUsername,
			AdminPasswordHash:       adminPasswordHash,
			RedisPassword:           redisPassword,
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(ctx, cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, shutting down ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return pkg.BytesToString(stdout), nil
}
