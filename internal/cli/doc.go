// Package cli is responsible for parsing command-line arguments and flags.
// It translates user input from the command line into an app.Config that the
// application core can use to run.
package cli
