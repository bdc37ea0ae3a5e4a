package options

import (
	"fmt"

	"github.com/vk/upsconf/internal/argstore"
)

// ListenAddrSpec is a raw listen-address specification: an address and an
// optional port string (empty when the port was not given).
type ListenAddrSpec struct {
	Address string
	Port    string
}

// DeviceSpec is a raw device specification. Description is optional.
type DeviceSpec struct {
	ID          string
	Driver      string
	Port        string
	Description string
}

// Result is the outcome of validating a command line against the option
// catalog. Scalar values and record specifications are only meaningful when
// Valid is true; the error and unknown-option lists are always complete.
type Result struct {
	Valid bool

	Unknown []string
	Errors  []Error
	Stray   []string

	Help          bool
	Autoconfigure bool
	IsConfigured  bool
	System        bool
	Local         string
	Mode          string

	// MonitorValues holds the raw monitor fields, six per record, in
	// command-line order.
	MonitorValues []string
	ListenAddrs   []ListenAddrSpec
	Devices       []DeviceSpec

	SetMonitorCount int
	AddMonitorCount int
	SetListenCount  int
	AddListenCount  int
	SetDeviceCount  int
	AddDeviceCount  int
}

// KeepExistingMonitors reports whether new monitors extend, rather than
// replace, the persisted ones. True iff --add-monitor was used.
func (r *Result) KeepExistingMonitors() bool { return r.AddMonitorCount > 0 }

// KeepExistingListens reports whether new listen addresses extend, rather
// than replace, the persisted ones. True iff --add-listen was used.
func (r *Result) KeepExistingListens() bool { return r.AddListenCount > 0 }

// KeepExistingDevices reports whether existing device entries survive the
// upsert. True iff --add-device was used.
func (r *Result) KeepExistingDevices() bool { return r.AddDeviceCount > 0 }

func (r *Result) errorf(kind ErrorKind, option, format string, args ...any) {
	r.Errors = append(r.Errors, Error{
		Kind:    kind,
		Option:  option,
		Message: fmt.Sprintf(format, args...),
	})
}

// Validate checks every option occurrence in the store against the catalog
// and builds the raw record specifications. It never stops at the first
// problem: all malformed occurrences, unknown options and stray arguments
// are collected so they can be reported in one pass.
func Validate(store *argstore.Store) *Result {
	res := &Result{}

	// Single-dashed options are always unknown in this tool.
	for _, name := range store.SingleNames() {
		for i := 0; i < store.CountSingle(name); i++ {
			res.Unknown = append(res.Unknown, "-"+name)
		}
	}

	for _, name := range store.DoubleNames() {
		desc, known := catalog[name]
		if !known {
			for i := 0; i < store.CountDouble(name); i++ {
				res.Unknown = append(res.Unknown, "--"+name)
			}
			continue
		}

		switch desc.kind {
		case kindFlag:
			res.validateFlag(store, name)
		case kindScalar:
			res.validateScalar(store, name, desc)
		case kindTuple:
			res.validateTuple(store, name, desc)
		}
	}

	res.Stray = store.Positional()
	res.Valid = len(res.Unknown) == 0 && len(res.Errors) == 0 && len(res.Stray) == 0

	// set-* and add-* of one family can't both be specified.
	for _, excl := range []struct {
		family   Family
		setCount int
		addCount int
	}{
		{FamilyMonitor, res.SetMonitorCount, res.AddMonitorCount},
		{FamilyListen, res.SetListenCount, res.AddListenCount},
		{FamilyDevice, res.SetDeviceCount, res.AddDeviceCount},
	} {
		if excl.setCount > 0 && excl.addCount > 0 {
			res.errorf(MutualExclusionViolation, "set-"+excl.family.String(),
				"--set-%[1]s and --add-%[1]s options can't both be specified", excl.family)
			res.Valid = false
		}
	}

	return res
}

// validateFlag handles presence-only options. Arguments attached to a flag
// are ignored rather than rejected, matching the tool's historic behavior.
func (r *Result) validateFlag(store *argstore.Store, name string) {
	if store.CountDouble(name) > 1 {
		r.errorf(DuplicateScalarOption, name, "--%s option specified more than once", name)
	}

	switch name {
	case "help":
		r.Help = true
	case "autoconfigure":
		r.Autoconfigure = true
	case "is-configured":
		r.IsConfigured = true
	case "system":
		r.System = true
	}
}

func (r *Result) validateScalar(store *argstore.Store, name string, desc descriptor) {
	if store.CountDouble(name) > 1 {
		r.errorf(DuplicateScalarOption, name, "--%s option specified more than once", name)
	}

	args, _ := store.Double(name, 0)

	switch {
	case len(args) == 0:
		r.errorf(MissingArgument, name, "--%s option requires an argument", name)
		return
	case len(args) > desc.maxArgs:
		if name == "local" {
			r.errorf(ArityMismatch, name, "Only one directory may be specified with the --local option")
		} else {
			r.errorf(ArityMismatch, name, "Only one argument allowed for the --%s option", name)
		}
		return
	}

	if desc.enum != nil && !contains(desc.enum, args[0]) {
		r.errorf(InvalidEnumValue, name, "Unknown mode: %q", args[0])
		return
	}

	switch name {
	case "local":
		r.Local = args[0]
	case "mode":
		r.Mode = args[0]
	}
}

// validateTuple handles the repeatable record families. Every occurrence is
// addressed by its ordinal within its own name and checked independently; a
// malformed occurrence appends an error but never stops the pass, and the
// occurrence counters advance regardless of validity.
func (r *Result) validateTuple(store *argstore.Store, name string, desc descriptor) {
	count := store.CountDouble(name)

	for ordinal := 0; ordinal < count; ordinal++ {
		args, _ := store.Double(name, ordinal)

		switch {
		case len(args) == 0:
			r.errorf(MissingArgument, name, "--%s option requires arguments", name)

		case desc.family == FamilyMonitor && len(args) != desc.minArgs:
			r.errorf(ArityMismatch, name, "--%s option requires exactly %d arguments", name, desc.minArgs)

		case desc.family == FamilyListen && len(args) > desc.maxArgs:
			r.errorf(ArityMismatch, name, "--%s option requires 1 or 2 arguments", name)

		case desc.family == FamilyDevice && len(args) < desc.minArgs:
			r.errorf(ArityMismatch, name, "--%s option requires at least %d arguments", name, desc.minArgs)

		case desc.family == FamilyDevice && len(args) > desc.maxArgs:
			r.errorf(ArityMismatch, name, "--%s option takes at most %d arguments", name, desc.maxArgs)
			r.errorf(ArityMismatch, name, "    (perhaps you need to quote the description?)")

		default:
			r.appendRecord(desc.family, args)
		}
	}

	switch {
	case desc.family == FamilyMonitor && desc.keep:
		r.AddMonitorCount += count
	case desc.family == FamilyMonitor:
		r.SetMonitorCount += count
	case desc.family == FamilyListen && desc.keep:
		r.AddListenCount += count
	case desc.family == FamilyListen:
		r.SetListenCount += count
	case desc.family == FamilyDevice && desc.keep:
		r.AddDeviceCount += count
	case desc.family == FamilyDevice:
		r.SetDeviceCount += count
	}
}

func (r *Result) appendRecord(family Family, args []string) {
	switch family {
	case FamilyMonitor:
		r.MonitorValues = append(r.MonitorValues, args...)

	case FamilyListen:
		spec := ListenAddrSpec{Address: args[0]}
		if len(args) > 1 {
			spec.Port = args[1]
		}
		r.ListenAddrs = append(r.ListenAddrs, spec)

	case FamilyDevice:
		spec := DeviceSpec{ID: args[0], Driver: args[1], Port: args[2]}
		if len(args) > 3 {
			spec.Description = args[3]
		}
		r.Devices = append(r.Devices, spec)
	}
}
