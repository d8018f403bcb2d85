package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/auth/register", handler.Register)
	mux.HandleFunc("POST /v1/auth/token", handler.IssueToken)

	// Matches exist only through their fixture; creation and deletion are
	// rejected outright, before authentication.
	mux.HandleFunc("POST /v1/matches", handler.MatchLifecycleForbidden)
	mux.HandleFunc("DELETE /v1/matches/{matchID}", handler.MatchLifecycleForbidden)
}

// registerReadRoutes exposes the resource reads to any authenticated caller.
func registerReadRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	auth := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, h)
	}

	mux.Handle("GET /v1/continents", auth(handler.ListContinents))
	mux.Handle("GET /v1/continents/{continentID}", auth(handler.GetContinent))
	mux.Handle("GET /v1/nations", auth(handler.ListNations))
	mux.Handle("GET /v1/nations/{nationID}", auth(handler.GetNation))
	mux.Handle("GET /v1/cities", auth(handler.ListCities))
	mux.Handle("GET /v1/cities/{cityID}", auth(handler.GetCity))
	mux.Handle("GET /v1/stadiums", auth(handler.ListStadiums))
	mux.Handle("GET /v1/stadiums/{stadiumID}", auth(handler.GetStadium))

	mux.Handle("GET /v1/teams", auth(handler.ListTeams))
	mux.Handle("GET /v1/teams/{teamID}", auth(handler.GetTeam))
	mux.Handle("GET /v1/managers", auth(handler.ListManagers))
	mux.Handle("GET /v1/managers/{managerID}", auth(handler.GetManager))
	mux.Handle("GET /v1/managers/{managerID}/team", auth(handler.GetManagerTeam))
	mux.Handle("GET /v1/referees", auth(handler.ListReferees))
	mux.Handle("GET /v1/referees/{refereeID}", auth(handler.GetReferee))

	mux.Handle("GET /v1/players", auth(handler.ListPlayers))
	mux.Handle("GET /v1/players/{playerID}", auth(handler.GetPlayer))
	mux.Handle("GET /v1/player-roles", auth(handler.ListPlayerRoles))
	mux.Handle("GET /v1/player-roles/{roleID}", auth(handler.GetPlayerRole))

	mux.Handle("GET /v1/seasons", auth(handler.ListSeasons))
	mux.Handle("GET /v1/seasons/{seasonID}", auth(handler.GetSeason))
	mux.Handle("GET /v1/seasons/{seasonName}/leagues", auth(handler.ListLeaguesBySeason))
	mux.Handle("GET /v1/leagues/{leagueID}", auth(handler.GetLeague))
	mux.Handle("GET /v1/seasons/{seasonName}/league-tables", auth(handler.ListTableRowsBySeason))
	mux.Handle("GET /v1/league-tables/{rowID}", auth(handler.GetTableRow))

	mux.Handle("GET /v1/match-statuses", auth(handler.ListMatchStatuses))
	mux.Handle("GET /v1/match-statuses/{statusID}", auth(handler.GetMatchStatus))
	mux.Handle("GET /v1/seasons/{seasonName}/fixtures", auth(handler.ListFixturesBySeason))
	mux.Handle("GET /v1/fixtures/{fixtureID}", auth(handler.GetFixture))
	mux.Handle("GET /v1/fixtures/{fixtureID}/match", auth(handler.GetFixtureMatch))
	mux.Handle("GET /v1/seasons/{seasonName}/matches", auth(handler.ListMatchesBySeason))
	mux.Handle("GET /v1/matches/{matchID}", auth(handler.GetMatch))

	mux.Handle("GET /v1/match-events", auth(handler.ListMatchEvents))
	mux.Handle("GET /v1/match-events/{eventID}", auth(handler.GetMatchEvent))
	mux.Handle("GET /v1/event-types", auth(handler.ListEventTypes))
	mux.Handle("GET /v1/event-types/{typeID}", auth(handler.GetEventType))
	mux.Handle("GET /v1/pitch-locations", auth(handler.ListPitchLocations))
	mux.Handle("GET /v1/pitch-locations/{locationID}", auth(handler.GetPitchLocation))

	mux.Handle("GET /v1/players/{playerID}/stats/{seasonName}", auth(handler.GetPlayerSeasonStats))
	mux.Handle("GET /v1/teams/{teamID}/stats/{seasonName}", auth(handler.GetTeamSeasonStats))
}

func registerAccountRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/auth/logout", RequireAuth(verifier, http.HandlerFunc(handler.Logout)))
	mux.Handle("GET /v1/users/me", RequireAuth(verifier, http.HandlerFunc(handler.GetProfile)))
	mux.Handle("PUT /v1/users/me", RequireAuth(verifier, http.HandlerFunc(handler.UpdateProfile)))
	mux.Handle("PATCH /v1/users/me", RequireAuth(verifier, http.HandlerFunc(handler.UpdateProfile)))
}

func registerStaffRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	staff := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, RequireStaff(h))
	}

	mux.Handle("POST /v1/continents", staff(handler.CreateContinent))
	mux.Handle("PUT /v1/continents/{continentID}", staff(handler.UpdateContinent))
	mux.Handle("PATCH /v1/continents/{continentID}", staff(handler.UpdateContinent))
	mux.Handle("DELETE /v1/continents/{continentID}", staff(handler.DeleteContinent))

	mux.Handle("POST /v1/nations", staff(handler.CreateNation))
	mux.Handle("PUT /v1/nations/{nationID}", staff(handler.UpdateNation))
	mux.Handle("PATCH /v1/nations/{nationID}", staff(handler.UpdateNation))
	mux.Handle("DELETE /v1/nations/{nationID}", staff(handler.DeleteNation))

	mux.Handle("POST /v1/cities", staff(handler.CreateCity))
	mux.Handle("PUT /v1/cities/{cityID}", staff(handler.UpdateCity))
	mux.Handle("PATCH /v1/cities/{cityID}", staff(handler.UpdateCity))
	mux.Handle("DELETE /v1/cities/{cityID}", staff(handler.DeleteCity))

	mux.Handle("POST /v1/stadiums", staff(handler.CreateStadium))
	mux.Handle("PUT /v1/stadiums/{stadiumID}", staff(handler.UpdateStadium))
	mux.Handle("PATCH /v1/stadiums/{stadiumID}", staff(handler.UpdateStadium))
	mux.Handle("DELETE /v1/stadiums/{stadiumID}", staff(handler.DeleteStadium))

	mux.Handle("POST /v1/teams", staff(handler.CreateTeam))
	mux.Handle("PUT /v1/teams/{teamID}", staff(handler.UpdateTeam))
	mux.Handle("PATCH /v1/teams/{teamID}", staff(handler.UpdateTeam))
	mux.Handle("DELETE /v1/teams/{teamID}", staff(handler.DeleteTeam))

	mux.Handle("POST /v1/managers", staff(handler.CreateManager))
	mux.Handle("PUT /v1/managers/{managerID}", staff(handler.UpdateManager))
	mux.Handle("PATCH /v1/managers/{managerID}", staff(handler.UpdateManager))
	mux.Handle("DELETE /v1/managers/{managerID}", staff(handler.DeleteManager))

	mux.Handle("POST /v1/referees", staff(handler.CreateReferee))
	mux.Handle("PUT /v1/referees/{refereeID}", staff(handler.UpdateReferee))
	mux.Handle("PATCH /v1/referees/{refereeID}", staff(handler.UpdateReferee))
	mux.Handle("DELETE /v1/referees/{refereeID}", staff(handler.DeleteReferee))

	mux.Handle("POST /v1/players", staff(handler.CreatePlayer))
	mux.Handle("PUT /v1/players/{playerID}", staff(handler.UpdatePlayer))
	mux.Handle("PATCH /v1/players/{playerID}", staff(handler.UpdatePlayer))
	mux.Handle("DELETE /v1/players/{playerID}", staff(handler.DeletePlayer))

	mux.Handle("POST /v1/player-roles", staff(handler.CreatePlayerRole))
	mux.Handle("PUT /v1/player-roles/{roleID}", staff(handler.UpdatePlayerRole))
	mux.Handle("PATCH /v1/player-roles/{roleID}", staff(handler.UpdatePlayerRole))
	mux.Handle("DELETE /v1/player-roles/{roleID}", staff(handler.DeletePlayerRole))

	mux.Handle("POST /v1/seasons", staff(handler.CreateSeason))
	mux.Handle("PUT /v1/seasons/{seasonID}", staff(handler.UpdateSeason))
	mux.Handle("PATCH /v1/seasons/{seasonID}", staff(handler.UpdateSeason))
	mux.Handle("DELETE /v1/seasons/{seasonID}", staff(handler.DeleteSeason))

	mux.Handle("POST /v1/leagues", staff(handler.CreateLeague))
	mux.Handle("PUT /v1/leagues/{leagueID}", staff(handler.UpdateLeague))
	mux.Handle("PATCH /v1/leagues/{leagueID}", staff(handler.UpdateLeague))
	mux.Handle("DELETE /v1/leagues/{leagueID}", staff(handler.DeleteLeague))

	mux.Handle("POST /v1/league-tables", staff(handler.CreateTableRow))
	mux.Handle("PUT /v1/league-tables/{rowID}", staff(handler.UpdateTableRow))
	mux.Handle("PATCH /v1/league-tables/{rowID}", staff(handler.UpdateTableRow))
	mux.Handle("DELETE /v1/league-tables/{rowID}", staff(handler.DeleteTableRow))

	mux.Handle("POST /v1/match-statuses", staff(handler.CreateMatchStatus))
	mux.Handle("PUT /v1/match-statuses/{statusID}", staff(handler.UpdateMatchStatus))
	mux.Handle("PATCH /v1/match-statuses/{statusID}", staff(handler.UpdateMatchStatus))
	mux.Handle("DELETE /v1/match-statuses/{statusID}", staff(handler.DeleteMatchStatus))

	mux.Handle("POST /v1/fixtures", staff(handler.CreateFixture))
	mux.Handle("PUT /v1/fixtures/{fixtureID}", staff(handler.UpdateFixture))
	mux.Handle("PATCH /v1/fixtures/{fixtureID}", staff(handler.UpdateFixture))
	mux.Handle("DELETE /v1/fixtures/{fixtureID}", staff(handler.DeleteFixture))

	mux.Handle("PUT /v1/matches/{matchID}", staff(handler.UpdateMatch))
	mux.Handle("PATCH /v1/matches/{matchID}", staff(handler.UpdateMatch))

	mux.Handle("POST /v1/match-events", staff(handler.CreateMatchEvent))
	mux.Handle("PUT /v1/match-events/{eventID}", staff(handler.UpdateMatchEvent))
	mux.Handle("PATCH /v1/match-events/{eventID}", staff(handler.UpdateMatchEvent))
	mux.Handle("DELETE /v1/match-events/{eventID}", staff(handler.DeleteMatchEvent))

	mux.Handle("POST /v1/event-types", staff(handler.CreateEventType))
	mux.Handle("PUT /v1/event-types/{typeID}", staff(handler.UpdateEventType))
	mux.Handle("PATCH /v1/event-types/{typeID}", staff(handler.UpdateEventType))
	mux.Handle("DELETE /v1/event-types/{typeID}", staff(handler.DeleteEventType))

	mux.Handle("POST /v1/pitch-locations", staff(handler.CreatePitchLocation))
	mux.Handle("PUT /v1/pitch-locations/{locationID}", staff(handler.UpdatePitchLocation))
	mux.Handle("PATCH /v1/pitch-locations/{locationID}", staff(handler.UpdatePitchLocation))
	mux.Handle("DELETE /v1/pitch-locations/{locationID}", staff(handler.DeletePitchLocation))
}
