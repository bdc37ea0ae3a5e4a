// Package options knows the fixed catalog of recognized command-line
// options, their arity rules and mutual-exclusion constraints. It consumes
// an argstore.Store and produces a validated Result carrying scalar values
// and the raw monitor, listen-address and device specifications, together
// with every validation error and unknown option encountered. Validation is
// batch: all problems are collected in one pass so the operator sees the
// complete set at once.
package options
