package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	accountModel "freelance-job-tracker/internal/account/model"
	jobModel "freelance-job-tracker/internal/job/model"
)

func accounts(ids ...uint) []accountModel.Account {
	out := make([]accountModel.Account, 0, len(ids))
	for _, id := range ids {
		out = append(out, accountModel.Account{ID: id})
	}
	return out
}

func TestAccountsFulfilled_AutoSelectsFirst(t *testing.T) {
	t.Parallel()

	s := accountsPending(State{})
	assert.True(t, s.Accounts.Loading)

	s = accountsFulfilled(s, accounts(3, 5))
	assert.False(t, s.Accounts.Loading)
	assert.EqualValues(t, 3, s.Accounts.SelectedID)

	// An existing selection is kept.
	s = accountsFulfilled(s, accounts(3, 5, 7))
	assert.EqualValues(t, 3, s.Accounts.SelectedID)
}

func TestAccountsRejected_KeepsCachedItems(t *testing.T) {
	t.Parallel()

	s := accountsFulfilled(State{}, accounts(1, 2))
	s = accountsPending(s)
	s = accountsRejected(s, "boom")

	assert.Equal(t, "boom", s.Accounts.Err)
	assert.Len(t, s.Accounts.Items, 2)
	assert.False(t, s.Accounts.Loading)
}

func TestAccountCreated_BecomesSelection(t *testing.T) {
	t.Parallel()

	s := accountsFulfilled(State{}, accounts(1))
	s = accountCreated(s, accountModel.Account{ID: 2})

	assert.Len(t, s.Accounts.Items, 2)
	assert.EqualValues(t, 2, s.Accounts.SelectedID)
}

func TestAccountDeleted_SelectionFallback(t *testing.T) {
	t.Parallel()

	s := accountsFulfilled(State{}, accounts(1, 2, 3))
	assert.EqualValues(t, 1, s.Accounts.SelectedID)

	// Deleting the selected account falls back to the first remaining one.
	s = accountDeleted(s, 1)
	assert.EqualValues(t, 2, s.Accounts.SelectedID)
	assert.Len(t, s.Accounts.Items, 2)

	// Deleting an unselected account leaves the selection alone.
	s = accountDeleted(s, 3)
	assert.EqualValues(t, 2, s.Accounts.SelectedID)

	// Deleting the last one clears the selection.
	s = accountDeleted(s, 2)
	assert.Zero(t, s.Accounts.SelectedID)
	assert.Empty(t, s.Accounts.Items)
}

func TestAccountSelected_ClearsJobs(t *testing.T) {
	t.Parallel()

	s := accountsFulfilled(State{}, accounts(1, 2))
	s = jobsFulfilled(s, []jobModel.Job{{ID: 10}})

	s = accountSelected(s, 2)
	assert.EqualValues(t, 2, s.Accounts.SelectedID)
	assert.Empty(t, s.Jobs.Items)
}

func TestJobTransitions(t *testing.T) {
	t.Parallel()

	s := jobsPending(State{})
	assert.True(t, s.Jobs.Loading)

	s = jobsFulfilled(s, []jobModel.Job{{ID: 1, ClientName: "A"}, {ID: 2, ClientName: "B"}})
	assert.Len(t, s.Jobs.Items, 2)

	s = jobCreated(s, jobModel.Job{ID: 3, ClientName: "C"})
	assert.Len(t, s.Jobs.Items, 3)

	s = jobUpdated(s, jobModel.Job{ID: 2, ClientName: "B2"})
	assert.Equal(t, "B2", s.Jobs.Items[1].ClientName)

	s = jobDeleted(s, 1)
	assert.Len(t, s.Jobs.Items, 2)
	assert.EqualValues(t, 2, s.Jobs.Items[0].ID)

	// A rejected refresh records the error but keeps the cache.
	s = jobsRejected(s, "network down")
	assert.Equal(t, "network down", s.Jobs.Err)
	assert.Len(t, s.Jobs.Items, 2)
}

func TestLoggedOut_ResetsEverything(t *testing.T) {
	t.Parallel()

	s := accountsFulfilled(State{}, accounts(1))
	s = jobsFulfilled(s, []jobModel.Job{{ID: 1}})
	s = loggedOut(s)

	assert.True(t, s.Auth.Initialized)
	assert.Nil(t, s.Auth.User)
	assert.Empty(t, s.Accounts.Items)
	assert.Empty(t, s.Jobs.Items)
	assert.Zero(t, s.Accounts.SelectedID)
}
