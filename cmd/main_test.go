package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sbilibin2017/qr-drive-cashier/internal/events"
	"github.com/sbilibin2017/qr-drive-cashier/internal/models"
	"github.com/sbilibin2017/qr-drive-cashier/internal/reference"
	"github.com/sbilibin2017/qr-drive-cashier/internal/repositories"
	"github.com/sbilibin2017/qr-drive-cashier/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

var configKeys = []string{
	"APP_HOST", "APP_PORT", "APP_LOG_LEVEL", "APP_LOG_ENCODING", "APP_SHUTDOWN_TIMEOUT_SECOND",
	"PUBLIC_BASE_URL", "OUTLET_CODE", "QR_REFERENCE_TTL_SECOND", "SSE_KEEPALIVE_SECOND", "SEED_DEMO_DATA",
	"REDIS_HOST", "REDIS_PORT", "REDIS_DB", "REDIS_PASSWORD", "REDIS_POOL_SIZE", "REDIS_MIN_IDLE_CONNS",
	"KAFKA_BROKERS", "KAFKA_TOPIC",
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	for _, key := range configKeys {
		os.Unsetenv(key)
	}
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Build version: v1.0.0")
	assert.Contains(t, output, "Build date: 2025-09-26")
	assert.Contains(t, output, "Build commit: abcd1234")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogEncoding)
	assert.Equal(t, "", cfg.PublicBaseURL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)

	assert.Equal(t, "LC-PST", cfg.OutletCode)
	assert.Equal(t, 120*time.Second, cfg.ReferenceTTL)
	assert.Equal(t, 15*time.Second, cfg.SSEKeepAlive)
	assert.True(t, cfg.SeedDemoData)

	assert.Equal(t, "", cfg.RedisHost)
	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 10, cfg.RedisPoolSize)
	assert.Equal(t, 2, cfg.RedisMinIdleConns)

	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "transactions", cfg.KafkaTopic)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("PUBLIC_BASE_URL", "https://pay.example.com")
	os.Setenv("OUTLET_CODE", "LC-BDG")
	os.Setenv("QR_REFERENCE_TTL_SECOND", "60")
	os.Setenv("SSE_KEEPALIVE_SECOND", "5")
	os.Setenv("SEED_DEMO_DATA", "false")
	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	os.Setenv("KAFKA_TOPIC", "cashier.transactions")
	defer resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.AppHost)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://pay.example.com", cfg.PublicBaseURL)
	assert.Equal(t, "LC-BDG", cfg.OutletCode)
	assert.Equal(t, time.Minute, cfg.ReferenceTTL)
	assert.Equal(t, 5*time.Second, cfg.SSEKeepAlive)
	assert.False(t, cfg.SeedDemoData)
	assert.Equal(t, "redis.example.com", cfg.RedisHost)
	assert.Equal(t, 6380, cfg.RedisPort)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, "redispass", cfg.RedisPassword)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "cashier.transactions", cfg.KafkaTopic)
}

func TestParseConfig_Invalid(t *testing.T) {
	for key, value := range map[string]string{
		"REDIS_PORT":              "not-a-port",
		"QR_REFERENCE_TTL_SECOND": "2m",
		"SEED_DEMO_DATA":          "maybe",
	} {
		t.Run(key, func(t *testing.T) {
			resetEnv()
			os.Setenv(key, value)
			defer resetEnv()

			_, err := parseConfig("nonexistent.env")
			assert.ErrorContains(t, err, key)
		})
	}
}

// newTestServer wires the router over in-memory dependencies.
func newTestServer(t *testing.T) (*httptest.Server, *events.ScanBus) {
	t.Helper()

	generator, err := reference.NewGenerator(reference.DefaultOutletCode)
	require.NoError(t, err)

	bus := events.NewScanBus(events.DefaultBufferSize)
	transactionService := services.NewTransactionService(repositories.NewTransactionMemoryRepository(), bus, nil)
	qrService := services.NewQRService(transactionService, generator, repositories.NewReferenceMemoryRepository(time.Minute), "", time.Minute)

	cfg := config{AppHost: "localhost", AppPort: "8080"}
	srv := httptest.NewServer(newRouter(cfg, transactionService, qrService, bus))
	t.Cleanup(func() {
		bus.Close()
		srv.Close()
	})
	return srv, bus
}

func doJSON(t *testing.T, method, url, body string, out any) int {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestRouter_DriveThroughFlow(t *testing.T) {
	srv, bus := newTestServer(t)

	// QR display opens its event stream.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	streamReq, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/qr/events", nil)
	require.NoError(t, err)
	stream, err := http.DefaultClient.Do(streamReq)
	require.NoError(t, err)
	defer stream.Body.Close()
	require.Eventually(t, func() bool { return bus.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	// Display asks for a QR code.
	var qr models.QRCode
	status := doJSON(t, http.MethodPost, srv.URL+"/qr", `{"baseUrl":"http://localhost:3000"}`, &qr)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, fmt.Sprintf("http://localhost:3000/t/%s?ref=%s", qr.TransactionID, qr.Reference), qr.TransactionURL)

	// Customer opens the page; the display hears about it.
	var ack map[string]any
	status = doJSON(t, http.MethodPost, srv.URL+"/t/"+qr.TransactionID+"/notify-view", "", &ack)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, ack["success"])

	reader := bufio.NewReader(stream.Body)
	var frame strings.Builder
	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if line == "\n" {
			break
		}
		frame.WriteString(line)
	}
	assert.Contains(t, frame.String(), "event:qrScanned")
	assert.Contains(t, frame.String(), qr.TransactionID)

	// Customer submits details, cashier confirms, a late cancel is ignored.
	var tx models.Transaction
	status = doJSON(t, http.MethodPut, srv.URL+"/transactions/"+qr.TransactionID, `{"customerName":"Budi Santoso","amount":75000}`, &tx)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.StatusPending, tx.Status)

	status = doJSON(t, http.MethodPut, srv.URL+"/transactions/"+qr.TransactionID, `{"status":"completed"}`, &tx)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.StatusCompleted, tx.Status)

	status = doJSON(t, http.MethodPut, srv.URL+"/transactions/"+qr.TransactionID, `{"status":"cancelled"}`, &tx)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.StatusCompleted, tx.Status)

	// Reference resolves back to the same transaction.
	status = doJSON(t, http.MethodGet, srv.URL+"/qr/references/"+qr.Reference, "", &tx)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, qr.TransactionID, tx.ID)

	var summary models.Summary
	status = doJSON(t, http.MethodGet, srv.URL+"/transactions/summary", "", &summary)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(75000), summary.TotalRevenue)
	assert.Equal(t, 1, summary.CompletedTransactions)
	assert.Equal(t, float64(100), summary.CompletionRate)
}

func TestRouter_Endpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	var created models.Transaction
	status := doJSON(t, http.MethodPost, srv.URL+"/transactions", `{"type":"Transfer","customerName":"Siti Aminah","amount":1250000}`, &created)
	require.Equal(t, http.StatusCreated, status)

	var list []models.Transaction
	assert.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, srv.URL+"/transactions", "", &list))
	assert.Len(t, list, 1)

	var got models.Transaction
	assert.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, srv.URL+"/transactions/"+created.ID, "", &got))
	assert.Equal(t, created.ID, got.ID)

	var errResp map[string]string
	assert.Equal(t, http.StatusNotFound, doJSON(t, http.MethodGet, srv.URL+"/transactions/nonexistent-id", "", &errResp))
	assert.Equal(t, "Transaction not found", errResp["error"])

	assert.Equal(t, http.StatusBadRequest, doJSON(t, http.MethodPost, srv.URL+"/transactions", `{"type":"Transfer","amount":-5}`, nil))
	assert.Equal(t, http.StatusNotFound, doJSON(t, http.MethodGet, srv.URL+"/qr/references/LC-PST-20250720-103000-AB12CD", "", nil))
	assert.Equal(t, http.StatusBadRequest, doJSON(t, http.MethodGet, srv.URL+"/qr/references/garbage", "", nil))

	var health map[string]string
	assert.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, srv.URL+"/health", "", &health))
	assert.Equal(t, "healthy", health["status"])

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRun_InMemory(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	cfg := config{
		AppHost:         "127.0.0.1",
		AppPort:         "0",
		LogLevel:        "error",
		LogEncoding:     "json",
		OutletCode:      reference.DefaultOutletCode,
		ReferenceTTL:    time.Minute,
		SeedDemoData:    true,
		ShutdownTimeout: time.Second,
	}

	assert.NoError(t, run(ctx, cfg))
}

func TestRun_InvalidOutletCode(t *testing.T) {
	cfg := config{LogLevel: "error", OutletCode: "not valid"}
	assert.Error(t, run(context.Background(), cfg))
}

func TestRun_WithRedis(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Redis container test in short mode")
	}
	ctx := context.Background()

	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	testCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	cfg := config{
		AppHost:           "127.0.0.1",
		AppPort:           "0",
		LogLevel:          "error",
		OutletCode:        reference.DefaultOutletCode,
		ReferenceTTL:      time.Minute,
		ShutdownTimeout:   time.Second,
		RedisHost:         redisHost,
		RedisPort:         redisPort.Int(),
		RedisPoolSize:     2,
		RedisMinIdleConns: 1,
	}

	assert.NoError(t, run(testCtx, cfg))
}
