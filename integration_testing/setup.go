package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/mkovacevic/fitstats/internal"
	"github.com/mkovacevic/fitstats/internal/config"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9000
	serverHost = "localhost"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	DB         *sql.DB
	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()
}

func newSuite(ctx context.Context) (_ *Suite) {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := suite.redisSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}

	pgPort, err := suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	cfg := getTestConfig(redisPort, pgPort)
	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			MobileAppSecret:         "test",
			VersionInfo:             "test-version-info",
			AdminUsername:           "adminUsername",
			AdminPasswordHash:       "adminPasswordHash",
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		suite.cleanup()
		log.Fatalf("new server: %s", err)
	}

	suite.server.Serve(ctx, cfg.Host, cfg.Port)

	return suite
}

func (s *Suite) cleanup() {
	if s.DB != nil {
		s.DB.Close()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
	if s.server != nil {
		s.server.GracefulShutdown()
	}
}

func getTestConfig(redisPort, postgresPort string) *config.Config {
	return &config.Config{
		Host:                        serverHost,
		Port:                        serverPort,
		RedisHost:                   "localhost",
		RedisPort:                   redisPort,
		PostgresPort:                postgresPort,
		PostgresHost:                "localhost",
		PostgresDBName:              "fitstats_db",
		LoginRateLimitAllowedPerMin: 60,
		StatsCacheSizeMegabytes:     1,
		StatsCacheTTLSeconds:        1,
	}
}

func (s *Suite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, nil
}

func (s *Suite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "12",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_HOST_AUTH_METHOD=trust",
			"POSTGRES_DB=fitstats_db",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/fitstats_db?sslmode=disable", pgPort)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return "", fmt.Errorf("open db conn: %s", err)
	}
	s.DB = db

	res, err := db.Exec(initSQL)
	if err != nil {
		return "", fmt.Errorf("run init script: %s", err)
	}

	numRows, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("get rows affected: %s", err)
	}

	log.Printf("postgres setup result: %d\n", numRows)

	if db.Ping() != nil {
		return "", fmt.Errorf("ping db: %s", err)
	}

	return pgPort, nil
}

const initSQL = `
CREATE TABLE public.exercise_type
(
    id           VARCHAR PRIMARY KEY,
    name         VARCHAR NOT NULL,
    muscle_group VARCHAR NOT NULL,
    category     VARCHAR NOT NULL,
    description  VARCHAR NOT NULL DEFAULT '',
    created_at   TIMESTAMP WITHOUT TIME ZONE NOT NULL
);

ALTER TABLE public.exercise_type OWNER TO postgres;

CREATE TABLE public.workout
(
    id               SERIAL PRIMARY KEY,
    user_id          UUID    NOT NULL,
    workout_date     TIMESTAMP WITHOUT TIME ZONE NOT NULL,
    duration_minutes INTEGER NOT NULL DEFAULT 0,
    notes            TEXT    NOT NULL DEFAULT '',
    created_at       TIMESTAMP WITHOUT TIME ZONE NOT NULL
);

ALTER TABLE public.workout OWNER TO postgres;
CREATE INDEX ix_workout_user_date ON public.workout (user_id, workout_date);

CREATE TABLE public.workout_set
(
    id           SERIAL PRIMARY KEY,
    workout_id   INTEGER NOT NULL REFERENCES public.workout (id) ON DELETE CASCADE,
    exercise_id  VARCHAR NOT NULL REFERENCES public.exercise_type (id),
    reps         INTEGER NOT NULL,
    weight_kilos DOUBLE PRECISION NOT NULL,
    rest_seconds INTEGER NOT NULL DEFAULT 0,
    set_order    INTEGER NOT NULL
);

ALTER TABLE public.workout_set OWNER TO postgres;
CREATE INDEX ix_workout_set_workout ON public.workout_set (workout_id);

CREATE TABLE public.goal
(
    id            SERIAL PRIMARY KEY,
    user_id       UUID    NOT NULL,
    goal_type     VARCHAR NOT NULL,
    name          VARCHAR NOT NULL,
    description   VARCHAR NOT NULL DEFAULT '',
    target_value  DOUBLE PRECISION NOT NULL,
    current_value DOUBLE PRECISION NOT NULL DEFAULT 0,
    unit          VARCHAR NOT NULL DEFAULT '',
    start_date    TIMESTAMP WITHOUT TIME ZONE NOT NULL,
    end_date      TIMESTAMP WITHOUT TIME ZONE,
    is_completed  BOOLEAN NOT NULL DEFAULT FALSE,
    completed_at  TIMESTAMP WITHOUT TIME ZONE,
    created_at    TIMESTAMP WITHOUT TIME ZONE NOT NULL
);

ALTER TABLE public.goal OWNER TO postgres;
CREATE INDEX ix_goal_user ON public.goal (user_id);

CREATE TABLE public.goal_progress
(
    id         SERIAL PRIMARY KEY,
    goal_id    INTEGER NOT NULL REFERENCES public.goal (id) ON DELETE CASCADE,
    workout_id INTEGER NOT NULL,
    value      DOUBLE PRECISION NOT NULL,
    notes      VARCHAR NOT NULL DEFAULT '',
    created_at TIMESTAMP WITHOUT TIME ZONE NOT NULL
);

ALTER TABLE public.goal_progress OWNER TO postgres;
CREATE INDEX ix_goal_progress_goal ON public.goal_progress (goal_id);
`
