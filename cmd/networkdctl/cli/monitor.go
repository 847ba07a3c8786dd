package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	networkd "github.com/frobware/go-networkd"
	"github.com/frobware/go-networkd/history"
)

// MonitorCmd watches the runtime state tree and reports field
// transitions as they happen.
type MonitorCmd struct {
	Category string `help:"Watch category: all, links or leases." default:"all" enum:"all,links,leases"`
	Journal  string `help:"Record transitions to this SQLite journal." type:"path"`
}

// Run executes the monitor command. The monitor's descriptor is polled
// directly; on every wake the state tree is re-read and compared with
// the previous reading, because the notification channel only promises
// "something changed".
func (cmd *MonitorCmd) Run(cli *CLI) error {
	client, opts, logger, err := cli.Client()
	if err != nil {
		return err
	}
	logger = logger.With(slog.String("component", "monitor"))

	category, ok := networkd.ParseCategory(cmd.Category)
	if !ok {
		return fmt.Errorf("unknown category %q", cmd.Category)
	}

	m, err := networkd.NewMonitor(category, opts...)
	if err != nil {
		return fmt.Errorf("create state monitor: %w", err)
	}
	defer m.Close()

	var journal *history.Journal
	if cmd.Journal != "" {
		journal, err = history.Open(cmd.Journal)
		if err != nil {
			return err
		}
		defer journal.Close()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	obs := observer{client: client, logger: logger, journal: journal,
		fields: make(map[string]string)}
	obs.observe(ctx)

	// Poll with a short timeout so signal-driven cancellation is
	// noticed; the monitor itself never needs a periodic wake.
	timeout := 500
	if d, ok := m.Timeout(); ok {
		timeout = int(d.Milliseconds())
	}

	fds := []unix.PollFd{{Fd: int32(m.Descriptor()), Events: m.Events()}}
	for {
		if ctx.Err() != nil {
			return nil
		}
		fds[0].Revents = 0
		n, err := unix.Poll(fds, timeout)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return fmt.Errorf("poll monitor descriptor: %w", err)
		}
		if n == 0 {
			continue
		}
		if err := m.Flush(); err != nil {
			return err
		}
		obs.observe(ctx)
	}
}

// observer diffs successive readings of the state tree.
type observer struct {
	client  *networkd.Client
	logger  *slog.Logger
	journal *history.Journal
	// fields maps "scope/ifindex/field" to the last seen value;
	// absent fields are tracked as the empty string.
	fields map[string]string
}

func (o *observer) observe(ctx context.Context) {
	now := time.Now()

	o.diff(ctx, now, "global", 0, "OPER_STATE", o.client.OperationalState)
	o.diff(ctx, now, "global", 0, "CARRIER_STATE", o.client.CarrierState)
	o.diff(ctx, now, "global", 0, "ADDRESS_STATE", o.client.AddressState)
	o.diff(ctx, now, "global", 0, "ONLINE_STATE", o.client.OnlineState)

	links, err := o.client.Links()
	if err != nil {
		o.logger.Warn("enumerate links", slog.Any("error", err))
		return
	}
	for _, ifindex := range links {
		link := o.client.Link(ifindex)
		o.diff(ctx, now, "link", ifindex, "ADMIN_STATE", link.SetupState)
		o.diff(ctx, now, "link", ifindex, "OPER_STATE", link.OperationalState)
		o.diff(ctx, now, "link", ifindex, "CARRIER_STATE", link.CarrierState)
	}
}

func (o *observer) diff(ctx context.Context, now time.Time, scope string, ifindex int, field string, read func() (string, error)) {
	value, err := read()
	if err != nil && !networkd.IsAbsent(err) {
		o.logger.Warn("query failed", slog.String("field", field), slog.Any("error", err))
		return
	}

	key := fmt.Sprintf("%s/%d/%s", scope, ifindex, field)
	old, seen := o.fields[key]
	if seen && old == value {
		return
	}
	o.fields[key] = value

	o.logger.Info("state transition",
		slog.String("scope", scope),
		slog.Int("ifindex", ifindex),
		slog.String("field", field),
		slog.String("old", old),
		slog.String("new", value))

	if o.journal != nil {
		t := history.Transition{
			ObservedAt: now,
			Scope:      scope,
			Ifindex:    ifindex,
			Field:      field,
			Old:        old,
			New:        value,
		}
		if err := o.journal.Record(ctx, t); err != nil {
			o.logger.Warn("journal write failed", slog.Any("error", err))
		}
	}
}
