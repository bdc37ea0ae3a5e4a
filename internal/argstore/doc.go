// Package argstore recovers an ordered multi-value option structure from a
// flat command-line argument vector. It classifies each token as a
// single-dashed option, a double-dashed option, an option argument or a
// top-level argument, preserving the order and multiplicity of every
// occurrence. Option semantics (known names, arity, exclusivity) live one
// layer up, in the options package.
package argstore
