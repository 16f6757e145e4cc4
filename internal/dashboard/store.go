package dashboard

import (
	"context"

	jobModel "freelance-job-tracker/internal/job/model"
)

// Store drives the dashboard: each action issues one HTTP request and
// applies the pending/fulfilled/rejected transitions to the cached state.
// Rejected requests record the error message and leave cached items intact.
type Store struct {
	client *Client
	state  State
}

func NewStore(client *Client) *Store {
	return &Store{client: client}
}

// State returns a snapshot of the current state.
func (st *Store) State() State {
	return st.state
}

// Initialize restores the session from an existing token, if any.
func (st *Store) Initialize(ctx context.Context, token string) {
	if token == "" {
		st.state = loggedOut(st.state)
		return
	}

	st.client.SetToken(token)
	user, err := st.client.Me(ctx)
	if err != nil {
		st.client.SetToken("")
		st.state = loggedOut(st.state)
		return
	}

	st.state = authInitialized(st.state, user)
	st.state.Auth.Token = token
}

func (st *Store) Login(ctx context.Context, email, password string) error {
	st.state = loginPending(st.state)

	auth, err := st.client.Login(ctx, email, password)
	if err != nil {
		st.state = loginRejected(st.state, err.Error())
		return err
	}

	st.state = loginFulfilled(st.state, auth.User, auth.Token)
	return nil
}

func (st *Store) Logout() {
	st.client.SetToken("")
	st.state = loggedOut(st.state)
}

func (st *Store) FetchAccounts(ctx context.Context) error {
	st.state = accountsPending(st.state)

	accounts, err := st.client.GetAccounts(ctx)
	if err != nil {
		st.state = accountsRejected(st.state, err.Error())
		return err
	}

	st.state = accountsFulfilled(st.state, accounts)
	return nil
}

func (st *Store) CreateAccount(ctx context.Context, name, email string) error {
	account, err := st.client.CreateAccount(ctx, name, email)
	if err != nil {
		st.state = accountsRejected(st.state, err.Error())
		return err
	}

	st.state = accountCreated(st.state, *account)
	// The new account becomes the selection; its job list starts empty.
	return st.FetchJobs(ctx)
}

// SelectAccount switches the selection and refetches the job list for the
// newly selected account.
func (st *Store) SelectAccount(ctx context.Context, id uint) error {
	if st.state.Accounts.SelectedID == id {
		return nil
	}

	st.state = accountSelected(st.state, id)
	return st.FetchJobs(ctx)
}

// DeleteAccount removes the account server-side, then falls back to another
// remaining account (refetching its jobs) or clears the selection.
func (st *Store) DeleteAccount(ctx context.Context, id uint) error {
	if err := st.client.DeleteAccount(ctx, id); err != nil {
		st.state = accountsRejected(st.state, err.Error())
		return err
	}

	selected := st.state.Accounts.SelectedID
	st.state = accountDeleted(st.state, id)

	if selected == id {
		st.state.Jobs = JobsState{}
		if st.state.Accounts.SelectedID != 0 {
			return st.FetchJobs(ctx)
		}
	}
	return nil
}

func (st *Store) FetchJobs(ctx context.Context) error {
	accountID := st.state.Accounts.SelectedID
	if accountID == 0 {
		st.state.Jobs = JobsState{}
		return nil
	}

	st.state = jobsPending(st.state)

	jobs, err := st.client.GetJobs(ctx, accountID)
	if err != nil {
		st.state = jobsRejected(st.state, err.Error())
		return err
	}

	st.state = jobsFulfilled(st.state, jobs)
	return nil
}

func (st *Store) CreateJob(ctx context.Context, req *jobModel.CreateJobRequest) error {
	accountID := st.state.Accounts.SelectedID
	if accountID == 0 {
		return &APIError{Status: 400, Message: "no account selected"}
	}

	job, err := st.client.CreateJob(ctx, accountID, req)
	if err != nil {
		st.state = jobsRejected(st.state, err.Error())
		return err
	}

	st.state = jobCreated(st.state, *job)
	return nil
}

func (st *Store) UpdateJob(ctx context.Context, jobID uint, req *jobModel.UpdateJobRequest) error {
	accountID := st.state.Accounts.SelectedID
	if accountID == 0 {
		return &APIError{Status: 400, Message: "no account selected"}
	}

	job, err := st.client.UpdateJob(ctx, accountID, jobID, req)
	if err != nil {
		st.state = jobsRejected(st.state, err.Error())
		return err
	}

	st.state = jobUpdated(st.state, *job)
	return nil
}

func (st *Store) DeleteJob(ctx context.Context, jobID uint) error {
	accountID := st.state.Accounts.SelectedID
	if accountID == 0 {
		return &APIError{Status: 400, Message: "no account selected"}
	}

	if err := st.client.DeleteJob(ctx, accountID, jobID); err != nil {
		st.state = jobsRejected(st.state, err.Error())
		return err
	}

	st.state = jobDeleted(st.state, jobID)
	return nil
}
