package api

// Endpoint paths of the tournament backend.
const (
	// Accounts
	RouteRegister = "/api/utenti/register"
	RouteLogin    = "/api/utenti/login"
	RouteUsers    = "/api/utenti" // GET /api/utenti/{id}

	// Tournament actions
	RouteEnroll          = "/api/torneo/iscriviti"
	RouteBecomeOrganizer = "/api/torneo/sono-un-organizzatore"

	// Listings
	RouteParticipants = "/api/partecipanti"
	RouteMatches      = "/api/incontri" // PUT/DELETE /api/incontri/{id}
	RouteStandings    = "/api/classifica"
)
