package handler

type ContextKey string

var (
	TeamContextCtx    ContextKey = "teamContext"
	ContextTeamCtx    ContextKey = "contextTeam"
	TeamCtx           ContextKey = "team"
	ParticipantCtx    ContextKey = "participant"
	LoggedActivityCtx ContextKey = "loggedActivity"
)
