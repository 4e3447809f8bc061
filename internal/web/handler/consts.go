package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// RouterRootPath is the path of a route group's own root.
	RouterRootPath = "/"

	// HomePath is where "/" and unsafe redirects land.
	HomePath = "/notebooks"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"

	// LocalsCurrentUser holds the signed in models.User.
	LocalsCurrentUser = "CurrentUser"

	// LocalsSession holds the *session.Data of the request.
	LocalsSession = "Session"

	// LocalsSessionID holds the session id read from the cookie.
	LocalsSessionID = "SessionID"

	// LocalsCSRF is the context key the csrf middleware stores its token under.
	LocalsCSRF = "csrf"

	// CSRFFormField is the form field carrying the csrf token.
	CSRFFormField = "_csrf"
)
