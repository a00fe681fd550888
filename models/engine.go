package models

import (
	"encoding/json"
	"time"
)

// EngineMonth encodes t as year*12 + zero-based month, the marker stored in
// User.EngineResetMonth.
func EngineMonth(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// EngineUsage describes the caller's remaining engine quota.
type EngineUsage struct {
	Allowed    bool `json:"allowed"`
	Unlimited  bool `json:"unlimited"`
	Used       int  `json:"used"`
	Limit      int  `json:"limit"`
	Remaining  int  `json:"remaining"`
	ResetMonth int  `json:"resetMonth"`
}

// AnalyseRequest asks the engine for a move suggestion. Either TestID or the
// explicit board state must be provided.
type AnalyseRequest struct {
	TestID string `json:"testId,omitempty"`

	Game  *Game  `json:"game,omitempty"`
	Turn  int    `json:"turn"`
	Board *Board `json:"board,omitempty"`
	You   *Snake `json:"you,omitempty"`
}

// EngineAnalyseRequest is the body POSTed to the engine service.
type EngineAnalyseRequest struct {
	Game     Game   `json:"game"`
	Turn     int    `json:"turn"`
	Board    Board  `json:"board"`
	You      Snake  `json:"you"`
	Password string `json:"passwrd"`
}

// EngineAnalysis is the engine's answer, passed through verbatim.
type EngineAnalysis struct {
	Result json.RawMessage `json:"result"`
	Usage  EngineUsage     `json:"usage"`
}
