// Package auth provides authentication middleware for the web application.
//
// The middleware validates the session cookie and redirects unauthenticated
// requests to the login page. For a valid session it puts the user, the
// session data and the session id into fiber.Locals so handlers can resolve
// sidebar preferences and the detected platform without reading the store again.
//
// Static files, /metrics, /checkalive, login and logout are reachable without a session.
// A signed in user opening the login page is sent to /notebooks.
//
// Usage:
//
//	app.Use(authmiddleware.Middleware)
package auth
