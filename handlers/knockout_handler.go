package handlers

import (
	"errors"
	"net/http"

	"github.com/rollball/tournament-system/services"
)

type KnockoutHandler struct {
	knockoutService services.KnockoutService
}

func NewKnockoutHandler(knockoutService services.KnockoutService) *KnockoutHandler {
	return &KnockoutHandler{knockoutService: knockoutService}
}

// Generate builds a fresh bracket from the event's current qualifiers.
func (h *KnockoutHandler) Generate(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	bracket, err := h.knockoutService.GenerateBracket(r.Context(), eventID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"bracket": bracket}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *KnockoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	bracket, err := h.knockoutService.GetBracket(r.Context(), eventID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"bracket": bracket}
	if champion := bracket.Champion(); champion != nil {
		response["champion_team_id"] = *champion
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RecordWinner marks the winner of one bracket slot and returns the updated
// bracket with the winner propagated to the next round.
func (h *KnockoutHandler) RecordWinner(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		SlotID   string `json:"slot_id"`
		WinnerID int    `json:"winner_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.SlotID == "" || input.WinnerID <= 0 {
		badRequestResponse(w, r, errors.New("slot_id and winner_id are required"))
		return
	}

	bracket, err := h.knockoutService.RecordWinner(r.Context(), eventID, input.SlotID, input.WinnerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"bracket": bracket}
	if champion := bracket.Champion(); champion != nil {
		response["champion_team_id"] = *champion
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
