// Package server holds the HTTP server configuration and assembles the Fiber
// application.
//
// # Configuration
//
// The Config struct defines the listening port (PORT, default 3000), the
// optional API key that guards write requests and an optional directory that
// replaces the embedded pages.
//
// # Application
//
// NewApp wires the global middleware (RayID, request logging, recover, auth)
// and the Swagger UI, then asks the loader Manager to mount every enabled
// feature. The start command only has to listen on Config.Addr().
package server
