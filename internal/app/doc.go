// Package app assembles the application: configuration, logging,
// the monday.com board client, snapshot services, the websocket hub
// and the chi router, and manages server lifecycle including graceful
// shutdown.
package app
