package types

// Version is the application version. Overwritten by ldflags on release builds.
var Version = "v0.1.0"
