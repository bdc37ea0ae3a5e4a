package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/vk/upsconf/internal/confdoc"
	"github.com/vk/upsconf/internal/ctxlog"
	"github.com/vk/upsconf/internal/fsutil"
	"github.com/vk/upsconf/internal/merge"
	"github.com/vk/upsconf/internal/records"
)

// ErrNotConfigured is returned by Run when the --is-configured query
// answers false. It carries no message; the answer itself was already
// written to the output.
var ErrNotConfigured = errors.New("not configured")

// Run applies the validated options to the configuration directory, one
// record family at a time. Monitors, listen addresses and devices are
// merged independently.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	opts := a.config.Options

	dir := a.config.ConfDir
	if !fsutil.DirExists(dir) {
		return fmt.Errorf("configuration directory %s isn't available", dir)
	}
	a.logger.Debug("Configuration directory resolved.", "dir", dir)

	if opts.IsConfigured {
		return a.reportConfigured(ctx, dir)
	}

	if opts.Autoconfigure {
		a.logger.Warn("Autoconfiguration is not implemented; the option is ignored.")
	}

	if opts.Mode != "" {
		if err := a.applyMode(ctx, dir, opts.Mode); err != nil {
			return err
		}
	}

	if len(opts.MonitorValues) > 0 {
		if err := a.applyMonitors(ctx, dir); err != nil {
			return err
		}
	}

	if len(opts.ListenAddrs) > 0 {
		if err := a.applyListens(ctx, dir); err != nil {
			return err
		}
	}

	if len(opts.Devices) > 0 {
		if err := a.applyDevices(ctx, dir); err != nil {
			return err
		}
	}

	return nil
}

// reportConfigured answers the --is-configured query: true iff daemon.hcl
// exists and its mode is set and not "none". The answer is printed either
// way; a false answer is signaled with ErrNotConfigured.
func (a *App) reportConfigured(ctx context.Context, dir string) error {
	logger := ctxlog.FromContext(ctx)

	configured := false
	path := filepath.Join(dir, confdoc.DaemonFile)
	if fsutil.FileExists(path) {
		doc, err := confdoc.LoadDaemon(path)
		if err != nil {
			return err
		}
		configured = doc.Configured()
	}
	logger.Debug("Configuration state queried.", "configured", configured)

	if !configured {
		fmt.Fprintln(a.outW, "false")
		return ErrNotConfigured
	}
	fmt.Fprintln(a.outW, "true")
	return nil
}

func (a *App) applyMode(ctx context.Context, dir, mode string) error {
	logger := ctxlog.FromContext(ctx)

	path := filepath.Join(dir, confdoc.DaemonFile)
	doc, err := confdoc.LoadDaemon(path)
	if err != nil {
		return err
	}

	doc.Mode = mode
	if err := doc.Save(path); err != nil {
		return err
	}

	logger.Info("Daemon mode updated.", "mode", mode, "file", path)
	return nil
}

func (a *App) applyMonitors(ctx context.Context, dir string) error {
	logger := ctxlog.FromContext(ctx)
	opts := a.config.Options

	monitors, err := records.Monitors(opts)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, confdoc.MonitorFile)
	doc, err := confdoc.LoadMonitors(path)
	if err != nil {
		return err
	}

	doc.Monitors = merge.Monitors(doc.Monitors, monitors, opts.KeepExistingMonitors())
	if err := doc.Save(path); err != nil {
		return err
	}

	logger.Info("Monitor entries updated.",
		"new", len(monitors), "total", len(doc.Monitors), "file", path)
	return nil
}

func (a *App) applyListens(ctx context.Context, dir string) error {
	logger := ctxlog.FromContext(ctx)
	opts := a.config.Options

	listens, err := records.Listens(opts)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, confdoc.ListenFile)
	doc, err := confdoc.LoadListens(path)
	if err != nil {
		return err
	}

	doc.Listens = merge.Listens(doc.Listens, listens, opts.KeepExistingListens())
	if err := doc.Save(path); err != nil {
		return err
	}

	logger.Info("Listen addresses updated.",
		"new", len(listens), "total", len(doc.Listens), "file", path)
	return nil
}

func (a *App) applyDevices(ctx context.Context, dir string) error {
	logger := ctxlog.FromContext(ctx)
	opts := a.config.Options

	devices := records.Devices(opts)

	path := filepath.Join(dir, confdoc.DeviceFile)
	doc, err := confdoc.LoadDevices(path)
	if err != nil {
		return err
	}

	merge.Devices(doc, devices, opts.KeepExistingDevices())
	if err := doc.Save(path); err != nil {
		return err
	}

	logger.Info("Device entries updated.", "new", len(devices), "file", path)
	return nil
}
