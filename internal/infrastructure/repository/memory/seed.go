package memory

import (
	"github.com/dugouthq/dugout/internal/domain/eligibility"
	"github.com/dugouthq/dugout/internal/domain/roster"
)

const (
	TeamIDRiverBandits = "team-river-bandits"
	TeamIDMapleThunder = "team-maple-thunder"
)

// SeedPlayers returns two small-club rosters for local development: a
// twelve-player machine-pitch squad and a ten-player squad that pitches.
func SeedPlayers() []roster.Player {
	return []roster.Player{
		{TeamPlayerID: "rb-01", TeamID: TeamIDRiverBandits, Name: "Avery Collins", JerseyNumber: 2},
		{TeamPlayerID: "rb-02", TeamID: TeamIDRiverBandits, Name: "Jordan Blake", JerseyNumber: 4},
		{TeamPlayerID: "rb-03", TeamID: TeamIDRiverBandits, Name: "Sam Whitaker", JerseyNumber: 5},
		{TeamPlayerID: "rb-04", TeamID: TeamIDRiverBandits, Name: "Riley Nakamura", JerseyNumber: 7},
		{TeamPlayerID: "rb-05", TeamID: TeamIDRiverBandits, Name: "Casey Ortiz", JerseyNumber: 8},
		{TeamPlayerID: "rb-06", TeamID: TeamIDRiverBandits, Name: "Quinn Adebayo", JerseyNumber: 9},
		{TeamPlayerID: "rb-07", TeamID: TeamIDRiverBandits, Name: "Morgan Reyes", JerseyNumber: 11},
		{TeamPlayerID: "rb-08", TeamID: TeamIDRiverBandits, Name: "Taylor Brennan", JerseyNumber: 13},
		{TeamPlayerID: "rb-09", TeamID: TeamIDRiverBandits, Name: "Dakota Liu", JerseyNumber: 16},
		{TeamPlayerID: "rb-10", TeamID: TeamIDRiverBandits, Name: "Emerson Vance", JerseyNumber: 21},
		{TeamPlayerID: "rb-11", TeamID: TeamIDRiverBandits, Name: "Skyler Dunn", JerseyNumber: 23},
		{TeamPlayerID: "rb-12", TeamID: TeamIDRiverBandits, Name: "Reese Okafor", JerseyNumber: 27},

		{TeamPlayerID: "mt-01", TeamID: TeamIDMapleThunder, Name: "Harper Singh", JerseyNumber: 1},
		{TeamPlayerID: "mt-02", TeamID: TeamIDMapleThunder, Name: "Rowan Delacroix", JerseyNumber: 3},
		{TeamPlayerID: "mt-03", TeamID: TeamIDMapleThunder, Name: "Finley Marsh", JerseyNumber: 6},
		{TeamPlayerID: "mt-04", TeamID: TeamIDMapleThunder, Name: "Jesse Kowalski", JerseyNumber: 10},
		{TeamPlayerID: "mt-05", TeamID: TeamIDMapleThunder, Name: "Peyton Alvarez", JerseyNumber: 12},
		{TeamPlayerID: "mt-06", TeamID: TeamIDMapleThunder, Name: "Drew Castellano", JerseyNumber: 14},
		{TeamPlayerID: "mt-07", TeamID: TeamIDMapleThunder, Name: "Alex Thorne", JerseyNumber: 17},
		{TeamPlayerID: "mt-08", TeamID: TeamIDMapleThunder, Name: "Kendall Pham", JerseyNumber: 19},
		{TeamPlayerID: "mt-09", TeamID: TeamIDMapleThunder, Name: "Logan Akintola", JerseyNumber: 22},
		{TeamPlayerID: "mt-10", TeamID: TeamIDMapleThunder, Name: "Blair Hutchinson", JerseyNumber: 25},
	}
}

func SeedEligibilityFlags() map[string][]eligibility.Flag {
	return map[string][]eligibility.Flag{
		TeamIDRiverBandits: {
			{TeamPlayerID: "rb-03", Position: roster.PositionCatcher, Eligible: true},
			{TeamPlayerID: "rb-07", Position: roster.PositionCatcher, Eligible: true},
			{TeamPlayerID: "rb-01", Position: roster.PositionFirstBase, Eligible: true},
			{TeamPlayerID: "rb-05", Position: roster.PositionFirstBase, Eligible: true},
			{TeamPlayerID: "rb-10", Position: roster.PositionFirstBase, Eligible: true},
		},
		TeamIDMapleThunder: {
			{TeamPlayerID: "mt-02", Position: roster.PositionCatcher, Eligible: true},
			{TeamPlayerID: "mt-04", Position: roster.PositionPitcher, Eligible: true},
			{TeamPlayerID: "mt-06", Position: roster.PositionPitcher, Eligible: true},
			{TeamPlayerID: "mt-09", Position: roster.PositionPitcher, Eligible: true},
			{TeamPlayerID: "mt-01", Position: roster.PositionFirstBase, Eligible: true},
			{TeamPlayerID: "mt-08", Position: roster.PositionFirstBase, Eligible: true},
		},
	}
}
