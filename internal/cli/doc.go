// Package cli is responsible for parsing command-line arguments, reporting
// validation problems, and handling process-level concerns like exit codes.
// It translates the validated option set into the application's internal
// configuration.
package cli
