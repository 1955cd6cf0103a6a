package remote

import (
	"github.com/five82/brevity/internal/nav"
	"github.com/five82/brevity/internal/state"
)

// LocationResponse is returned by GET /api/location. Deck and Slide are
// 1-based.
type LocationResponse struct {
	Presentation string `json:"presentation"`
	Title        string `json:"title"`
	Token        string `json:"token"`
	Deck         int    `json:"deck"`
	Slide        int    `json:"slide"`
	Counts       []int  `json:"counts"`
	Busy         bool   `json:"busy"`
	LastOutcome  string `json:"lastOutcome,omitempty"`
	Navigations  int    `json:"navigations"`
	Error        string `json:"error,omitempty"`
}

// NavigateResponse is returned by every navigation endpoint. Deck and Slide
// are 1-based and describe the position after the request.
type NavigateResponse struct {
	Outcome   string `json:"outcome"`
	Direction string `json:"direction"`
	Token     string `json:"token,omitempty"`
	Deck      int    `json:"deck"`
	Slide     int    `json:"slide"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func locationFrom(s state.Snapshot) LocationResponse {
	resp := LocationResponse{
		Presentation: s.Presentation,
		Title:        s.Title,
		Token:        s.Token,
		Deck:         s.Position.Deck + 1,
		Slide:        s.Position.Slide + 1,
		Counts:       s.Counts,
		Busy:         s.Busy,
		LastOutcome:  s.LastOutcome,
		Navigations:  s.Navigations,
	}
	if resp.Counts == nil {
		resp.Counts = []int{}
	}
	if s.LastError != nil {
		resp.Error = s.LastError.Error()
	}
	return resp
}

func navigateFrom(res nav.Result) NavigateResponse {
	return NavigateResponse{
		Outcome:   res.Outcome.String(),
		Direction: res.Direction.String(),
		Token:     res.Token,
		Deck:      res.To.Deck + 1,
		Slide:     res.To.Slide + 1,
	}
}
