package dashboard

import (
	accountModel "freelance-job-tracker/internal/account/model"
	jobModel "freelance-job-tracker/internal/job/model"
	userModel "freelance-job-tracker/internal/user/model"
)

// State is the dashboard's explicit state container: three independent
// slices updated by pure, request-lifecycle-driven transitions
// (pending/fulfilled/rejected). No ambient globals.
type State struct {
	Auth     AuthState
	Accounts AccountsState
	Jobs     JobsState
}

type AuthState struct {
	User        *userModel.UserResponse
	Token       string
	Initialized bool
	Loading     bool
	Err         string
}

type AccountsState struct {
	Items      []accountModel.Account
	SelectedID uint // 0 means no selection
	Loading    bool
	Err        string
}

type JobsState struct {
	Items   []jobModel.Job
	Loading bool
	Err     string
}

// Auth transitions.

func loginPending(s State) State {
	s.Auth.Loading = true
	s.Auth.Err = ""
	return s
}

func loginFulfilled(s State, user *userModel.UserResponse, token string) State {
	s.Auth.Loading = false
	s.Auth.User = user
	s.Auth.Token = token
	s.Auth.Initialized = true
	return s
}

func loginRejected(s State, msg string) State {
	s.Auth.Loading = false
	s.Auth.Err = msg
	return s
}

func authInitialized(s State, user *userModel.UserResponse) State {
	s.Auth.User = user
	s.Auth.Initialized = true
	return s
}

func loggedOut(s State) State {
	return State{Auth: AuthState{Initialized: true}}
}

// Accounts transitions.

func accountsPending(s State) State {
	s.Accounts.Loading = true
	s.Accounts.Err = ""
	return s
}

func accountsFulfilled(s State, items []accountModel.Account) State {
	s.Accounts.Loading = false
	s.Accounts.Items = items
	// Auto-select the first account when none selected.
	if s.Accounts.SelectedID == 0 && len(items) > 0 {
		s.Accounts.SelectedID = items[0].ID
	}
	return s
}

func accountsRejected(s State, msg string) State {
	s.Accounts.Loading = false
	s.Accounts.Err = msg
	return s
}

func accountCreated(s State, account accountModel.Account) State {
	s.Accounts.Items = append(s.Accounts.Items, account)
	s.Accounts.SelectedID = account.ID
	return s
}

// accountDeleted removes the account from the cache. When the deleted
// account was selected, selection falls back to the first remaining account
// or clears entirely.
func accountDeleted(s State, id uint) State {
	items := s.Accounts.Items[:0:0]
	for _, a := range s.Accounts.Items {
		if a.ID != id {
			items = append(items, a)
		}
	}
	s.Accounts.Items = items

	if s.Accounts.SelectedID == id {
		if len(items) > 0 {
			s.Accounts.SelectedID = items[0].ID
		} else {
			s.Accounts.SelectedID = 0
		}
	}
	return s
}

func accountSelected(s State, id uint) State {
	s.Accounts.SelectedID = id
	s.Jobs = JobsState{} // jobs are scoped to the selection
	return s
}

// Jobs transitions.

func jobsPending(s State) State {
	s.Jobs.Loading = true
	s.Jobs.Err = ""
	return s
}

func jobsFulfilled(s State, items []jobModel.Job) State {
	s.Jobs.Loading = false
	s.Jobs.Items = items
	return s
}

func jobsRejected(s State, msg string) State {
	s.Jobs.Loading = false
	s.Jobs.Err = msg
	return s
}

func jobCreated(s State, job jobModel.Job) State {
	s.Jobs.Items = append(s.Jobs.Items, job)
	return s
}

func jobUpdated(s State, job jobModel.Job) State {
	for i := range s.Jobs.Items {
		if s.Jobs.Items[i].ID == job.ID {
			s.Jobs.Items[i] = job
			break
		}
	}
	return s
}

func jobDeleted(s State, id uint) State {
	items := s.Jobs.Items[:0:0]
	for _, j := range s.Jobs.Items {
		if j.ID != id {
			items = append(items, j)
		}
	}
	s.Jobs.Items = items
	return s
}
