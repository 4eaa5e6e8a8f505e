package handlers

import (
	"fmt"
	"net/http"

	"github.com/rollball/tournament-system/export"
	"github.com/rollball/tournament-system/services"
)

type ExportHandler struct {
	standingsService services.StandingsService
	teamService      services.TeamService
}

func NewExportHandler(standingsService services.StandingsService, teamService services.TeamService) *ExportHandler {
	return &ExportHandler{
		standingsService: standingsService,
		teamService:      teamService,
	}
}

// EventStandingsCSV downloads all group tables of an event as one CSV file.
func (h *ExportHandler) EventStandingsCSV(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tables, err := h.standingsService.EventStandings(r.Context(), eventID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="event_%d_standings.csv"`, eventID))
	if err := export.WriteStandingsCSV(w, tables); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// TeamRosterCSV downloads a team's player list as a CSV file.
func (h *ExportHandler) TeamRosterCSV(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.teamService.GetTeamByID(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	players, err := h.teamService.GetRoster(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="team_%d_roster.csv"`, teamID))
	if err := export.WriteRosterCSV(w, team, players); err != nil {
		serverErrorResponse(w, r, err)
	}
}
