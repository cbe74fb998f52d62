package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/hospital/records/internal/config"
	"github.com/hospital/records/internal/domain/identity"
	"github.com/hospital/records/internal/platform/db"
	"github.com/hospital/records/internal/server"
)

// connStr is the database every test schema lives in. skipReason is set
// when no database could be reached.
var (
	connStr    string
	skipReason string
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	_ = godotenv.Load(filepath.Join(moduleRoot(), ".env"))
	connStr = os.Getenv("DATABASE_URL")

	cleanup := func() {}
	if connStr == "" {
		if _, err := exec.LookPath("docker"); err != nil {
			skipReason = "DATABASE_URL not set and docker not available"
		} else {
			cs, stop, err := startWithDocker(ctx)
			if err != nil {
				skipReason = fmt.Sprintf("start postgres container: %v", err)
			} else {
				connStr, cleanup = cs, stop
			}
		}
	}

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func moduleRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..")
}

// testEnv is one isolated schema with its own pool and a server wired the
// same way the serve command wires it.
type testEnv struct {
	Schema string
	Pool   *pgxpool.Pool
	Echo   *echo.Echo
	Now    time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if skipReason != "" {
		t.Skip(skipReason)
	}
	ctx := context.Background()

	schema := "it_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	pool, err := db.NewPool(ctx, connStr, 4, 0, schema)
	require.NoError(t, err)
	require.NoError(t, db.EnsureSchema(ctx, pool, schema))

	_, err = db.NewMigrator(pool, db.EmbeddedMigrations()).Up(ctx)
	require.NoError(t, err)

	t.Cleanup(func() {
		_, err := pool.Exec(context.Background(), fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schema))
		if err != nil {
			t.Logf("warning: failed to drop schema %s: %v", schema, err)
		}
		pool.Close()
	})

	env := &testEnv{
		Schema: schema,
		Pool:   pool,
		Now:    time.Now().UTC(),
	}
	env.Echo = env.newServer()
	return env
}

// newServer builds the same server the serve command runs, with the clock
// pinned to env.Now.
func (env *testEnv) newServer() *echo.Echo {
	cfg := &config.Config{
		Env:            "test",
		CORSOrigins:    []string{"*"},
		BodyLimit:      "64K",
		RequestTimeout: 10 * time.Second,
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}
	return server.New(server.Options{
		Config:   cfg,
		Pool:     env.Pool,
		Location: time.UTC,
		Now:      func() time.Time { return env.Now },
		Logger:   zerolog.Nop(),
	})
}

func (env *testEnv) seed(t *testing.T) {
	t.Helper()
	require.NoError(t, identity.SeedSamples(context.Background(), env.Pool, zerolog.Nop()))
}

func (env *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	env.Echo.ServeHTTP(rec, req)
	return rec
}

// post sends body and decodes the created id stored under idKey.
func (env *testEnv) post(t *testing.T, path string, body interface{}, idKey string) int64 {
	t.Helper()
	rec := env.do(t, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	id, ok := resp[idKey].(float64)
	require.True(t, ok, "missing %s in %v", idKey, resp)
	return int64(id)
}

func (env *testEnv) getList(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	rec := env.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.NotNil(t, rows, "expected a JSON array, got %s", rec.Body.String())
	return rows
}
