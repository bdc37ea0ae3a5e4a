// Package records turns validated raw option values into typed domain
// records. Unlike option validation, which is batch, materialization is
// fatal on the first bad value: a monitor with an unparsable host or power
// value means the whole invocation can't be trusted.
package records

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/upsconf/internal/options"
)

// Monitor is one fully typed monitor entry.
type Monitor struct {
	UPS        string
	Host       string
	Port       uint16
	PowerValue uint
	User       string
	Password   string
	IsMaster   bool
}

// ListenAddress is one fully typed listen-address entry. Port 0 means the
// port was not given.
type ListenAddress struct {
	Address string
	Port    uint16
}

// Device is one device entry. The zero Description means none was given.
type Device struct {
	ID          string
	Driver      string
	Port        string
	Description string
}

// HostPortError reports a host specification whose trailing port did not
// parse.
type HostPortError struct {
	Spec string
}

func (e *HostPortError) Error() string {
	return fmt.Sprintf("failed to parse host specification %q", e.Spec)
}

// PortError reports an unparsable listen port.
type PortError struct {
	Spec string
}

func (e *PortError) Error() string {
	return fmt.Sprintf("failed to parse port specification %q", e.Spec)
}

// PowerValueError reports an unparsable monitor power value.
type PowerValueError struct {
	Spec string
}

func (e *PowerValueError) Error() string {
	return fmt.Sprintf("failed to parse power value %q", e.Spec)
}

// fieldsPerMonitor is the number of raw values each monitor record spans in
// Result.MonitorValues.
const fieldsPerMonitor = 6

// MonitorCount returns how many monitor records the validated result holds.
func MonitorCount(res *options.Result) int {
	return len(res.MonitorValues) / fieldsPerMonitor
}

// MonitorAt materializes the i-th monitor record. The host field is split
// on its last colon: "host:9999" yields host "host" and port 9999, a bare
// "host" yields port 0, and a host with an unparsable trailing port is a
// HostPortError. Any role other than the literal "master" is treated as
// slave.
func MonitorAt(res *options.Result, i int) (Monitor, error) {
	if i < 0 || i >= MonitorCount(res) {
		return Monitor{}, fmt.Errorf("monitor index %d out of range", i)
	}

	values := res.MonitorValues[i*fieldsPerMonitor : (i+1)*fieldsPerMonitor]
	hostPort, powerValue, role := values[1], values[2], values[5]

	host := hostPort
	var port uint16
	if idx := strings.LastIndex(hostPort, ":"); idx >= 0 {
		p, err := strconv.ParseUint(hostPort[idx+1:], 10, 16)
		if err != nil {
			return Monitor{}, &HostPortError{Spec: hostPort}
		}
		host = hostPort[:idx]
		port = uint16(p)
	}

	power, err := strconv.ParseUint(powerValue, 10, 32)
	if err != nil {
		return Monitor{}, &PowerValueError{Spec: powerValue}
	}

	return Monitor{
		UPS:        values[0],
		Host:       host,
		Port:       port,
		PowerValue: uint(power),
		User:       values[3],
		Password:   values[4],
		IsMaster:   role == "master",
	}, nil
}

// Monitors materializes every monitor record, aborting on the first error.
func Monitors(res *options.Result) ([]Monitor, error) {
	n := MonitorCount(res)
	if n == 0 {
		return nil, nil
	}

	out := make([]Monitor, 0, n)
	for i := 0; i < n; i++ {
		m, err := MonitorAt(res, i)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// Listens materializes every listen-address record, aborting on the first
// unparsable port.
func Listens(res *options.Result) ([]ListenAddress, error) {
	if len(res.ListenAddrs) == 0 {
		return nil, nil
	}

	out := make([]ListenAddress, 0, len(res.ListenAddrs))
	for _, spec := range res.ListenAddrs {
		addr := ListenAddress{Address: spec.Address}
		if spec.Port != "" {
			p, err := strconv.ParseUint(spec.Port, 10, 16)
			if err != nil {
				return nil, &PortError{Spec: spec.Port}
			}
			addr.Port = uint16(p)
		}
		out = append(out, addr)
	}
	return out, nil
}

// Devices materializes every device record. Device fields are free-form
// strings, so this never fails; it exists for symmetry with the other
// families.
func Devices(res *options.Result) []Device {
	if len(res.Devices) == 0 {
		return nil
	}

	out := make([]Device, 0, len(res.Devices))
	for _, spec := range res.Devices {
		out = append(out, Device{
			ID:          spec.ID,
			Driver:      spec.Driver,
			Port:        spec.Port,
			Description: spec.Description,
		})
	}
	return out
}
