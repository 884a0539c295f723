package app

import "net/http"

type sessionKey string

const (
	SessionKeyGuest = sessionKey("guest")
)

func (s sessionKey) String() string {
	return string(s)
}

func (app *application) sessionToken(r *http.Request) string {
	return app.sessionManager.Token(r.Context())
}
