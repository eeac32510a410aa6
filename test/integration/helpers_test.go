package integration

import (
	"encoding/json"
	"net"
	"os"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/msto63/pawnboard/internal/remote"
)

// Test configuration from environment or defaults
type TestConfig struct {
	RemoteAddr string
}

func getTestConfig() TestConfig {
	return TestConfig{
		RemoteAddr: getEnv("TEST_PAWNBOARD_ADDR", "localhost:8088"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// skipIfServiceUnavailable skips the test if the service is not reachable
func skipIfServiceUnavailable(t *testing.T, addr string, serviceName string) {
	t.Helper()
	if !isServiceAvailable(addr) {
		t.Skipf("Skipping: %s service not available at %s", serviceName, addr)
	}
}

// isServiceAvailable checks if a TCP connection can be established
func isServiceAvailable(addr string) bool {
	conn, err := net.DialTimeout("tcp", addr, 2*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// client is one remote console connection
type client struct {
	t     *testing.T
	conn  *websocket.Conn
	hello remote.HelloPayload
}

// dialRemote connects to the board console and reads the hello message
func dialRemote(t *testing.T, addr string) *client {
	t.Helper()

	dialer := websocket.Dialer{HandshakeTimeout: 5 * time.Second}
	conn, _, err := dialer.Dial("ws://"+addr+"/ws", nil)
	requireNoError(t, err, "Failed to connect")
	t.Cleanup(func() {
		conn.Close()
	})

	c := &client{t: t, conn: conn}
	c.read(remote.TypeHello, &c.hello)
	return c
}

func (c *client) read(typ string, payload interface{}) {
	c.t.Helper()

	c.conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var resp struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	requireNoError(c.t, c.conn.ReadJSON(&resp), "Failed to read message")
	requireEqual(c.t, typ, resp.Type, "Unexpected message type")
	if payload != nil {
		requireNoError(c.t, json.Unmarshal(resp.Payload, payload), "Failed to decode payload")
	}
}

// run sends one command line and returns the result
func (c *client) run(input string) remote.ResultPayload {
	c.t.Helper()

	payload, err := json.Marshal(remote.CommandPayload{Input: input})
	requireNoError(c.t, err, "Failed to encode command")
	requireNoError(c.t, c.conn.WriteJSON(remote.Message{Type: remote.TypeCommand, Payload: payload}), "Failed to send command")

	var result remote.ResultPayload
	c.read(remote.TypeResult, &result)
	return result
}

// requireNoError fails the test if err is not nil
func requireNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", msg, err)
	}
}

// requireTrue fails the test if condition is false
func requireTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Fatalf("Expected true: %s", msg)
	}
}

// requireEqual fails the test if expected != actual
func requireEqual(t *testing.T, expected, actual interface{}, msg string) {
	t.Helper()
	if expected != actual {
		t.Fatalf("%s: expected %v, got %v", msg, expected, actual)
	}
}

// logTestStart logs the start of a test with service info
func logTestStart(t *testing.T, serviceName, testName string) {
	t.Helper()
	t.Logf("=== %s: %s ===", serviceName, testName)
}
