package integration

import (
	"context"
	"fmt"
	"net"
	"os/exec"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	postgresImage = "postgres:16-alpine"
	postgresUser  = "hospital"
	postgresPass  = "hospital"
	postgresDB    = "hospitaltest"
)

// postgresContainer is a throwaway PostgreSQL started through the docker CLI.
// Docker picks the host port.
type postgresContainer struct {
	id string
}

// startWithDocker runs a postgres container, waits for it to answer queries
// and returns its connection string and a function that removes it.
func startWithDocker(ctx context.Context) (string, func(), error) {
	out, err := exec.CommandContext(ctx, "docker", "run", "-d", "--rm",
		"-P",
		"-e", "POSTGRES_USER="+postgresUser,
		"-e", "POSTGRES_PASSWORD="+postgresPass,
		"-e", "POSTGRES_DB="+postgresDB,
		"--label", "hospital-records=integration",
		postgresImage,
	).CombinedOutput()
	if err != nil {
		return "", nil, fmt.Errorf("docker run: %w\noutput: %s", err, out)
	}
	pc := &postgresContainer{id: strings.TrimSpace(string(out))}

	hostPort, err := pc.hostPort(ctx)
	if err != nil {
		pc.remove()
		return "", nil, err
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", postgresUser, postgresPass, hostPort, postgresDB)
	if err := waitForPostgres(ctx, dsn, 30*time.Second); err != nil {
		pc.remove()
		return "", nil, err
	}
	return dsn, pc.remove, nil
}

// hostPort asks docker where 5432 was published. The answer may list an
// IPv6 binding as well; the first line is used.
func (pc *postgresContainer) hostPort(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "docker", "port", pc.id, "5432/tcp").Output()
	if err != nil {
		return "", fmt.Errorf("docker port: %w", err)
	}
	first := strings.TrimSpace(strings.SplitN(string(out), "\n", 2)[0])
	_, port, err := net.SplitHostPort(first)
	if err != nil {
		return "", fmt.Errorf("parse docker port output %q: %w", first, err)
	}
	return net.JoinHostPort("127.0.0.1", port), nil
}

func (pc *postgresContainer) remove() {
	_ = exec.Command("docker", "rm", "-f", pc.id).Run()
}

// waitForPostgres polls with a fresh connection until SELECT 1 succeeds.
func waitForPostgres(ctx context.Context, dsn string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	tick := time.NewTicker(500 * time.Millisecond)
	defer tick.Stop()

	var lastErr error
	for {
		if lastErr = queryOnce(ctx, dsn); lastErr == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("postgres not ready after %v: %w", timeout, lastErr)
		case <-tick.C:
		}
	}
}

func queryOnce(ctx context.Context, dsn string) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	var one int
	return conn.QueryRow(ctx, "SELECT 1").Scan(&one)
}
