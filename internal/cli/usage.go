package cli

import (
	"fmt"
	"io"

	"github.com/vk/upsconf/internal/app"
)

var usageLines = []string{
	"    --help                        Display this help and exit",
	"    --autoconfigure               Perform autoconfiguration",
	"    --is-configured               Checks whether the daemon is configured",
	"    --local <directory>           Sets configuration directory",
	"    --system                      Sets configuration directory to " + app.DefaultConfDir + " (default)",
	"    --mode <mode>                 Sets daemon mode (see below)",
	"    --set-monitor <spec>          Configures one monitor (see below)",
	"                                  All existing entries are removed; however, it may be",
	"                                  specified multiple times to set multiple entries",
	"    --add-monitor <spec>          Same as --set-monitor, but keeps existing entries",
	"                                  The two options are mutually exclusive",
	"    --set-listen <addr> [<port>]  Configures one listen address for the daemon",
	"                                  All existing entries are removed; however, it may be",
	"                                  specified multiple times to set multiple entries",
	"    --add-listen <addr> [<port>]  Same as --set-listen, but keeps existing entries",
	"                                  The two options are mutually exclusive",
	"    --set-device <spec>           Configures one UPS device (see below)",
	"                                  All existing devices are removed; however, it may be",
	"                                  specified multiple times to set multiple devices",
	"    --add-device <spec>           Same as --set-device, but keeps existing devices",
	"                                  The two options are mutually exclusive",
	"",
	"Daemon modes: standalone, netserver, netclient, controlled, manual, none",
	"Monitor is specified by the following sequence:",
	"    <ups_ID> <host>[:<port>] <power_value> <user> <passwd> (\"master\"|\"slave\")",
	"UPS device is specified by the following sequence:",
	"    <ups_ID> <driver> <port> [<description>]",
	"",
}

// printUsage writes the option summary to the given writer.
func printUsage(out io.Writer) {
	fmt.Fprintln(out, "Usage: upsconf [OPTIONS]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "OPTIONS:")
	for _, line := range usageLines {
		fmt.Fprintln(out, line)
	}
}
