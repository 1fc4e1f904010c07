package types

import "encoding/json"

type NewGameRequest struct {
	Height int `json:"height" binding:"required"`
	Width  int `json:"width" binding:"required"`

	// Rules override the configured rules field by field.
	Rules    json.RawMessage `json:"rules,omitempty"`
	Handicap []string        `json:"handicap,omitempty"`

	// FixedHandicap places that many stones on the star points instead.
	FixedHandicap int `json:"fixedHandicap,omitempty"`
}

// PlayMoveRequest carries a vertex such as "D4", or "pass" or "resign".
type PlayMoveRequest struct {
	Color  string `json:"color" binding:"required"`
	Vertex string `json:"vertex" binding:"required"`
}

type GameResponse struct {
	GameUid       string   `json:"gameUid"`
	Height        int      `json:"height"`
	Width         int      `json:"width"`
	Step          int      `json:"step"`
	ToMove        string   `json:"toMove"`
	Board         []string `json:"board"`
	Moves         []string `json:"moves"`
	BlackCaptures int      `json:"blackCaptures"`
	WhiteCaptures int      `json:"whiteCaptures"`
	Komi          float64  `json:"komi"`
	Over          bool     `json:"over"`
	Winner        string   `json:"winner,omitempty"`
	Reason        string   `json:"reason,omitempty"`
}

type LegalMovesResponse struct {
	GameUid  string   `json:"gameUid"`
	Color    string   `json:"color"`
	Vertices []string `json:"vertices"`
}

type VerdictResponse struct {
	GameUid    string `json:"gameUid"`
	Audited    bool   `json:"audited"`
	Moves      int    `json:"moves,omitempty"`
	Legal      bool   `json:"legal"`
	FailedStep int    `json:"failedStep,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
