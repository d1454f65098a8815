package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-ticket-registry/internal/clock"
	"github.com/sbilibin2017/gw-ticket-registry/internal/credentials"
	"github.com/sbilibin2017/gw-ticket-registry/internal/docstore"
	"github.com/sbilibin2017/gw-ticket-registry/internal/jwt"
	"github.com/sbilibin2017/gw-ticket-registry/internal/models"
	"github.com/sbilibin2017/gw-ticket-registry/internal/repositories"
	"github.com/sbilibin2017/gw-ticket-registry/internal/services"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

var configKeys = []string{
	"APP_HOST", "APP_PORT", "APP_LOG_LEVEL",
	"USERS_FILE", "EVENTS_FILE",
	"JWT_SECRET_KEY", "JWT_EXP_SECOND",
	"RESET_TOKEN_TTL_SECOND", "BCRYPT_COST",
	"KAFKA_BROKERS", "KAFKA_RESET_TOPIC", "KAFKA_INVENTORY_TOPIC",
}

// clearConfigEnv blanks every variable read by parseConfig for the test.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
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

	assert.Equal(t, "Starting service version v1.0.0, commit abcd1234, build 2025-09-26\n", buf.String())
}

func TestParseConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	appHost, appPort, logLevel,
		usersFile, eventsFile,
		jwtSecret, jwtExp,
		resetTTL, bcryptCost,
		brokers, resetTopic, inventoryTopic,
		err := parseConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "localhost", appHost)
	assert.Equal(t, "8080", appPort)
	assert.Equal(t, "info", logLevel)
	assert.Equal(t, "data/users.json", usersFile)
	assert.Equal(t, "data/events.json", eventsFile)
	assert.Equal(t, "my_super_secret_key", jwtSecret)
	assert.Equal(t, 3600, jwtExp)
	assert.Equal(t, 3600, resetTTL)
	assert.Equal(t, 10, bcryptCost)
	assert.Empty(t, brokers)
	assert.Equal(t, "password-resets", resetTopic)
	assert.Equal(t, "stock-changes", inventoryTopic)
}

func TestParseConfig_FromFile(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.env")
	content := "APP_PORT=9090\n" +
		"USERS_FILE=/var/lib/registry/users.json\n" +
		"RESET_TOKEN_TTL_SECOND=600\n" +
		"BCRYPT_COST=12\n" +
		"KAFKA_BROKERS=kafka-1:9092, kafka-2:9092,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	// godotenv does not override variables that are already set.
	for _, k := range []string{"APP_PORT", "USERS_FILE", "RESET_TOKEN_TTL_SECOND", "BCRYPT_COST", "KAFKA_BROKERS"} {
		require.NoError(t, os.Unsetenv(k))
	}

	_, appPort, _,
		usersFile, _,
		_, _,
		resetTTL, bcryptCost,
		brokers, _, _,
		err := parseConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", appPort)
	assert.Equal(t, "/var/lib/registry/users.json", usersFile)
	assert.Equal(t, 600, resetTTL)
	assert.Equal(t, 12, bcryptCost)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, brokers)
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	for _, key := range []string{"JWT_EXP_SECOND", "RESET_TOKEN_TTL_SECOND", "BCRYPT_COST"} {
		t.Run(key, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(key, "not-a-number")

			_, _, _, _, _, _, _, _, _, _, _, _, err := parseConfig(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}

func TestNewKafkaWriter(t *testing.T) {
	assert.Nil(t, newKafkaWriter(nil, "stock-changes"))

	w := newKafkaWriter([]string{"localhost:9092"}, "stock-changes")
	require.NotNil(t, w)
	assert.Equal(t, "stock-changes", w.Topic)
	assert.Equal(t, "localhost:9092", w.Addr.String())
}

type capturingNotifier struct {
	mu      sync.Mutex
	notices []models.ResetNotice
}

func (n *capturingNotifier) NotifyReset(_ context.Context, notice models.ResetNotice) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
	return nil
}

func (n *capturingNotifier) last() models.ResetNotice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.notices[len(n.notices)-1]
}

type testServer struct {
	t        *testing.T
	srv      *httptest.Server
	notifier *capturingNotifier
	clock    *clock.Fake
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	dir := t.TempDir()

	fake := clock.NewFake(time.Now())
	n := &capturingNotifier{}
	tokens := jwt.New(jwt.WithSecretKey("test-secret"), jwt.WithExpiration(time.Hour))

	users := services.NewUserService(
		repositories.NewUserFileRepository(docstore.New[models.User](filepath.Join(dir, "users.json"))),
		credentials.NewBcryptHasher(bcrypt.MinCost),
		credentials.NewRandomTokenGenerator(0),
		n,
		tokens,
		services.WithClock(fake),
	)
	inventory := services.NewInventoryService(
		repositories.NewEventFileRepository(docstore.New[models.Event](filepath.Join(dir, "events.json"))),
		nil,
		fake,
	)

	srv := httptest.NewServer(newRouter(zap.NewNop().Sugar(), "localhost", "8080", users, inventory, tokens))
	t.Cleanup(srv.Close)
	return &testServer{t: t, srv: srv, notifier: n, clock: fake}
}

func (s *testServer) do(method, path, token string, body any, out any) int {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, s.srv.URL+path, &buf)
	require.NoError(s.t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.srv.Client().Do(req)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	assert.NotEmpty(s.t, resp.Header.Get("X-Request-ID"))
	if out != nil {
		require.NoError(s.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (s *testServer) login(username, password string) string {
	s.t.Helper()
	var resp struct {
		Token string `json:"token"`
	}
	code := s.do(http.MethodPost, "/login", "", map[string]string{"username": username, "password": password}, &resp)
	require.Equal(s.t, http.StatusOK, code)
	return resp.Token
}

func TestRouter_UsersFlow(t *testing.T) {
	s := newTestServer(t)

	register := func(fullname, username, email, role string) int {
		return s.do(http.MethodPost, "/register", "", map[string]string{
			"fullname": fullname, "username": username, "email": email, "password": "pw1", "role": role,
		}, nil)
	}

	assert.Equal(t, http.StatusCreated, register("Root", "root", "root@x", "admin"))
	assert.Equal(t, http.StatusCreated, register("Alice A", "alice", "a@x", "user"))
	assert.Equal(t, http.StatusCreated, register("Bob", "bob", "b@x", ""))
	assert.Equal(t, http.StatusConflict, register("Alice B", "ALICE", "other@x", "user"))
	assert.Equal(t, http.StatusConflict, register("Alice C", "alice2", "A@X", "user"))
	assert.Equal(t, http.StatusBadRequest, register("", "carol", "c@x", "user"))

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/login", "", map[string]string{"username": "alice", "password": "bad"}, nil))

	adminToken := s.login("root", "pw1")
	userToken := s.login("alice", "pw1")

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/users", "", nil, nil))
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/users", userToken, nil, nil))

	var list struct {
		Users []models.PublicUser `json:"users"`
	}
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/users", adminToken, nil, &list))
	require.Len(t, list.Users, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{list.Users[0].ID, list.Users[1].ID, list.Users[2].ID})
	assert.Equal(t, models.RoleAdmin, list.Users[0].Role)
	assert.Equal(t, models.RoleUser, list.Users[2].Role)

	assert.Equal(t, http.StatusForbidden, s.do(http.MethodDelete, "/users/root", adminToken, nil, nil))
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, "/users/ghost", adminToken, nil, nil))
	assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, "/users/bob", adminToken, nil, nil))

	assert.Equal(t, http.StatusOK, s.do(http.MethodPost, "/users/alice/promote", adminToken, nil, nil))
	assert.Equal(t, http.StatusOK, s.do(http.MethodPost, "/users/alice/promote", adminToken, nil, nil))
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodDelete, "/users/alice", adminToken, nil, nil))

	// A new registration after a deletion continues the id sequence.
	assert.Equal(t, http.StatusCreated, register("Dave", "dave", "d@x", "user"))
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/users", adminToken, nil, &list))
	require.Len(t, list.Users, 3)
	assert.Equal(t, int64(4), list.Users[2].ID)
}

func TestRouter_PasswordResetFlow(t *testing.T) {
	s := newTestServer(t)

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/register", "", map[string]string{
		"fullname": "Alice A", "username": "alice", "email": "a@x", "password": "pw1",
	}, nil))

	var forgot map[string]string
	require.Equal(t, http.StatusAccepted, s.do(http.MethodPost, "/password/forgot", "", map[string]string{"login": "a@x"}, &forgot))
	token := s.notifier.last().Token
	require.Len(t, token, 64)
	assert.NotContains(t, forgot["message"], token)

	assert.Equal(t, http.StatusAccepted, s.do(http.MethodPost, "/password/forgot", "", map[string]string{"login": "ghost"}, nil))

	reset := func(tok, pw string) int {
		return s.do(http.MethodPost, "/password/reset", "", map[string]string{"email": "a@x", "token": tok, "newPassword": pw}, nil)
	}

	assert.Equal(t, http.StatusOK, reset(token, "pw2"))
	assert.Equal(t, http.StatusUnauthorized, reset(token, "pw3"))
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/login", "", map[string]string{"username": "alice", "password": "pw1"}, nil))
	s.login("alice", "pw2")

	require.Equal(t, http.StatusAccepted, s.do(http.MethodPost, "/password/forgot", "", map[string]string{"login": "alice"}, nil))
	s.clock.Advance(services.DefaultResetTTL + time.Second)
	assert.Equal(t, http.StatusUnauthorized, reset(s.notifier.last().Token, "pw4"))
}

func TestRouter_InventoryFlow(t *testing.T) {
	s := newTestServer(t)

	for _, u := range []string{"alice", "bob"} {
		require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/register", "", map[string]string{
			"fullname": u, "username": u, "email": u + "@x", "password": "pw",
		}, nil))
	}
	aliceToken := s.login("alice", "pw")
	bobToken := s.login("bob", "pw")

	addTier := func(token, name string, price float64, amount int64) int {
		return s.do(http.MethodPost, "/events/tiers", token, map[string]any{"eventName": name, "price": price, "amount": amount}, nil)
	}

	assert.Equal(t, http.StatusUnauthorized, addTier("", "Concert", 50, 10))
	assert.Equal(t, http.StatusOK, addTier(aliceToken, "Concert", 50, 10))
	assert.Equal(t, http.StatusOK, addTier(bobToken, "concert", 50, 5))
	assert.Equal(t, http.StatusOK, addTier(bobToken, "Concert", 20, 3))
	assert.Equal(t, http.StatusBadRequest, addTier(bobToken, "Concert", -1, 3))
	assert.Equal(t, http.StatusBadRequest, addTier(bobToken, "Concert", 20, 0))

	var resp struct {
		Events []models.Event `json:"events"`
	}
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/events", "", nil, &resp))
	require.Len(t, resp.Events, 1)
	assert.Equal(t, models.Event{
		ID:   1,
		Name: "Concert",
		PriceTiers: []models.PriceTier{
			{Price: 20, Stock: 3, OwnerUserID: 2},
			{Price: 50, Stock: 15, OwnerUserID: 1},
		},
	}, resp.Events[0])
}
