// Package app wires the validated command-line options to the persisted
// configuration documents: it resolves the configuration directory, answers
// the is-configured query and applies the monitor, listen-address, device
// and mode operations through the merge engine. It never terminates the
// process; failures travel up as errors for the caller to turn into exit
// codes.
package app
