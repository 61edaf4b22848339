// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the execution of every front-end mode
// (single evaluation, batch files, interactive form, HTTP server), decoupled
// from any specific entrypoint like a CLI.
package app
