// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RunStatus is the lifecycle state of a TestRun.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// Terminal reports whether the status closes the run.
func (s RunStatus) Terminal() bool {
	return s == RunStatusCompleted || s == RunStatusFailed
}

// TestRun is the audit record of one attempt to query a bot with a test's
// board. It is created running and receives exactly one terminal patch.
type TestRun struct {
	ID     string    `json:"id"`
	TestID string    `json:"testId"`
	UserID string    `json:"userId"`
	BotURL string    `json:"botUrl"`
	Status RunStatus `json:"status"`

	Move           *string `json:"move"`
	Shout          *string `json:"shout"`
	Passed         *bool   `json:"passed"`
	Error          *string `json:"error,omitempty"`
	HTTPStatus     *int    `json:"httpStatus,omitempty"`
	RawResponse    *string `json:"rawResponse,omitempty"`
	ResponseTimeMs *int64  `json:"responseTimeMs,omitempty"`

	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// TableName returns the name of the database table
// associated with the TestRun model.
func (r TestRun) TableName() string {
	return "test_runs"
}

// RunResult is the terminal patch written to a running TestRun.
type RunResult struct {
	Status         RunStatus
	Move           *string
	Shout          *string
	Passed         *bool
	Error          *string
	HTTPStatus     *int
	RawResponse    *string
	ResponseTimeMs *int64
	CompletedAt    time.Time
}

// Apply copies the terminal patch into the run.
func (p RunResult) Apply(r *TestRun) {
	r.Status = p.Status
	r.Move = p.Move
	r.Shout = p.Shout
	r.Passed = p.Passed
	r.Error = p.Error
	r.HTTPStatus = p.HTTPStatus
	r.RawResponse = p.RawResponse
	r.ResponseTimeMs = p.ResponseTimeMs
	completedAt := p.CompletedAt
	r.CompletedAt = &completedAt
}

// StartRunRequest starts a run of one test against a bot.
type StartRunRequest struct {
	TestID string `json:"testId"`
	BotURL string `json:"botUrl"`

	// Execute defaults to true: the run is queued for background execution.
	Execute *bool `json:"execute,omitempty"`
}

// RunTestsRequest runs several tests against the same bot.
type RunTestsRequest struct {
	TestIDs []string `json:"testIds"`
	BotURL  string   `json:"botUrl"`
}

// RunOutcome is the per-test result of a batch run. Error is set only when
// the run record could not be created at all.
type RunOutcome struct {
	TestID string   `json:"testId"`
	Run    *TestRun `json:"run,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// BotMoveRequest is the wire payload POSTed to a bot's /move endpoint.
type BotMoveRequest struct {
	Game  Game  `json:"game"`
	Turn  int   `json:"turn"`
	Board Board `json:"board"`
	You   Snake `json:"you"`
}

// BotResponse is the raw outcome of one HTTP exchange with a bot.
type BotResponse struct {
	StatusCode int
	Body       string
	Elapsed    time.Duration
}
