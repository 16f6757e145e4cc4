package dashboard

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelance-job-tracker/internal/config"
	"freelance-job-tracker/internal/database"
	jobModel "freelance-job-tracker/internal/job/model"
	"freelance-job-tracker/internal/logger"
	"freelance-job-tracker/internal/routes"
)

func TestMain(m *testing.M) {
	if err := logger.Init("production"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// The store is exercised against the real router backed by an embedded
// database, so the whole request path is covered.
func newStore(t *testing.T) *Store {
	t.Helper()

	db, err := database.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{
		Server:    config.ServerConfig{Environment: "production"},
		JWT:       config.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
		RateLimit: config.RateLimitConfig{GeneralRPS: 1000, GeneralBurst: 1000},
	}

	srv := httptest.NewServer(routes.SetupRoutes(cfg, db))
	t.Cleanup(srv.Close)

	return NewStore(NewClient(srv.URL))
}

func signUp(t *testing.T, st *Store, name, email, password string) {
	t.Helper()

	_, err := st.client.Register(context.Background(), name, email, password)
	require.NoError(t, err)
	require.NoError(t, st.Login(context.Background(), email, password))
}

func TestStoreLoginLifecycle(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	err := st.Login(ctx, "nobody@x.com", "secret1")
	require.Error(t, err)
	state := st.State()
	assert.NotEmpty(t, state.Auth.Err)
	assert.Nil(t, state.Auth.User)

	signUp(t, st, "Alice", "alice@x.com", "secret1")
	state = st.State()
	require.NotNil(t, state.Auth.User)
	assert.Equal(t, "alice@x.com", state.Auth.User.Email)
	assert.NotEmpty(t, state.Auth.Token)
	assert.Empty(t, state.Auth.Err)
}

func TestStoreInitialize(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	signUp(t, st, "Alice", "alice@x.com", "secret1")
	token := st.State().Auth.Token

	// A fresh store restores the session from the saved token.
	restored := NewStore(st.client)
	restored.Initialize(ctx, token)
	state := restored.State()
	assert.True(t, state.Auth.Initialized)
	require.NotNil(t, state.Auth.User)
	assert.Equal(t, "alice@x.com", state.Auth.User.Email)

	// A garbage token initializes logged out.
	empty := NewStore(NewClient(st.client.baseURL))
	empty.Initialize(ctx, "garbage")
	state = empty.State()
	assert.True(t, state.Auth.Initialized)
	assert.Nil(t, state.Auth.User)
}

func TestStoreAccountAndJobFlow(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	signUp(t, st, "Alice", "alice@x.com", "secret1")

	require.NoError(t, st.FetchAccounts(ctx))
	assert.Empty(t, st.State().Accounts.Items)

	require.NoError(t, st.CreateAccount(ctx, "Acc1", "a@a.com"))
	require.NoError(t, st.CreateAccount(ctx, "Acc2", "b@b.com"))
	state := st.State()
	require.Len(t, state.Accounts.Items, 2)
	// The most recently created account is selected.
	acc2 := state.Accounts.Items[1].ID
	assert.Equal(t, acc2, state.Accounts.SelectedID)

	require.NoError(t, st.CreateJob(ctx, &jobModel.CreateJobRequest{
		ClientName:                "Acme Corp",
		ClientCountry:             "USA",
		ClientRating:              4.5,
		JobDescription:            "Go developer wanted",
		PaymentVerificationStatus: "verified",
		ProposalWriting:           "proposal",
	}))
	state = st.State()
	require.Len(t, state.Jobs.Items, 1)
	jobID := state.Jobs.Items[0].ID

	// Switching accounts refetches the (empty) job list of the other one.
	acc1 := state.Accounts.Items[0].ID
	require.NoError(t, st.SelectAccount(ctx, acc1))
	assert.Empty(t, st.State().Jobs.Items)

	// Switching back restores the job from the server.
	require.NoError(t, st.SelectAccount(ctx, acc2))
	state = st.State()
	require.Len(t, state.Jobs.Items, 1)
	assert.Equal(t, jobID, state.Jobs.Items[0].ID)

	hasReply := true
	require.NoError(t, st.UpdateJob(ctx, jobID, &jobModel.UpdateJobRequest{HasReply: &hasReply}))
	state = st.State()
	require.NotNil(t, state.Jobs.Items[0].HasReply)
	assert.True(t, *state.Jobs.Items[0].HasReply)
	assert.Equal(t, "Acme Corp", state.Jobs.Items[0].ClientName)

	// Deleting the selected account falls back to the remaining one and
	// refetches its jobs.
	require.NoError(t, st.DeleteAccount(ctx, acc2))
	state = st.State()
	require.Len(t, state.Accounts.Items, 1)
	assert.Equal(t, acc1, state.Accounts.SelectedID)
	assert.Empty(t, state.Jobs.Items)

	// Deleting the last account clears the selection entirely.
	require.NoError(t, st.DeleteAccount(ctx, acc1))
	state = st.State()
	assert.Empty(t, state.Accounts.Items)
	assert.Zero(t, state.Accounts.SelectedID)
}

func TestStoreRejectedKeepsCache(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	signUp(t, st, "Alice", "alice@x.com", "secret1")
	require.NoError(t, st.CreateAccount(ctx, "Acc1", "a@a.com"))

	// Deleting a nonexistent account fails server-side; the cached list
	// stays intact and the error is recorded.
	err := st.DeleteAccount(ctx, 9999)
	require.Error(t, err)
	state := st.State()
	assert.Len(t, state.Accounts.Items, 1)
	assert.NotEmpty(t, state.Accounts.Err)
}
