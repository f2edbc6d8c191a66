package tabgroup

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"tabgroup/internal/element"
)

const tracerName = "tabgroup"

// Controller manages one focus group inside a root element. The group, the
// active position and the listener subscriptions are owned here and only
// change in response to SetRoot, Rescan, key events and focus events, all
// on the host's event loop.
type Controller struct {
	opts      Options
	dispatch  Dispatcher
	log       *slog.Logger
	tracer    trace.Tracer
	listeners *listenerSet

	root   *element.Node
	group  []*element.Node
	active Position
	gen    uint64

	// ignoreFocus is set while a passive auto-focus request is in flight so
	// the resulting focus event does not set the active position.
	ignoreFocus bool
}

// New creates a controller with no root.
func New(opts Options) (*Controller, error) {
	if opts.AutoFocus && opts.Scheduler == nil {
		return nil, ErrNoScheduler
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var tp trace.TracerProvider = noop.NewTracerProvider()
	if opts.Debug {
		tp = opts.TracerProvider
		if tp == nil {
			tp = otel.GetTracerProvider()
		}
	}

	c := &Controller{
		opts:     opts,
		dispatch: NewDispatcher(opts),
		log:      logger.With(slog.String("component", "tabgroup")),
		tracer:   tp.Tracer(tracerName),
		active:   None,
	}
	c.listeners = newListenerSet(handlers{
		keyDown: c.onKeyDown,
		focus:   c.onFocus,
	})
	return c, nil
}

// Ref returns the callback the host invokes with the root element once it
// is available, and with nil when the controller should let go of it.
func (c *Controller) Ref() func(*element.Node) {
	return c.SetRoot
}

// SetRoot establishes a new group under root. Passing nil tears the group
// down. A different root starts with no active position; passing the
// current root again behaves like Rescan plus auto-focus. Any auto-focus
// still pending for an earlier generation is dropped.
func (c *Controller) SetRoot(root *element.Node) {
	c.gen++
	if root != c.root {
		c.active = None
	}
	c.root = root
	if root == nil {
		c.teardown()
		return
	}

	c.scan()
	if c.opts.AutoFocus && len(c.group) > 0 {
		gen, first := c.gen, c.group[0]
		c.opts.Scheduler.Defer(func() { c.autoFocus(gen, first) })
	}
}

// Rescan rebuilds the group from the current root, for hosts that changed
// the tree under it. It does not schedule auto-focus.
func (c *Controller) Rescan() {
	if c.root == nil {
		return
	}
	c.gen++
	c.scan()
}

// Close removes every listener and forgets the root.
func (c *Controller) Close() {
	c.SetRoot(nil)
}

// Root returns the current root, or nil.
func (c *Controller) Root() *element.Node {
	return c.root
}

// Group returns a copy of the ordered group.
func (c *Controller) Group() []*element.Node {
	out := make([]*element.Node, len(c.group))
	copy(out, c.group)
	return out
}

// Active returns the active position, or None.
func (c *Controller) Active() Position {
	return c.active
}

// Generation counts root changes and rescans.
func (c *Controller) Generation() uint64 {
	return c.gen
}

// Listening returns how many members currently have listeners attached.
func (c *Controller) Listening() int {
	return c.listeners.count()
}

// KeyMap returns the navigation bindings, with disabled ones marked, for
// help rendering.
func (c *Controller) KeyMap() KeyMap {
	return c.dispatch.KeyMap()
}

func (c *Controller) scan() {
	_, span := c.tracer.Start(context.Background(), "tabgroup.scan")
	defer span.End()

	group := Scan(c.root)
	span.SetAttributes(
		attribute.Int("tabgroup.members", len(group)),
		attribute.Int64("tabgroup.generation", int64(c.gen)),
	)
	c.debug("scanned group", "members", len(group), "generation", c.gen)
	c.setGroup(group)
}

func (c *Controller) setGroup(group []*element.Node) {
	c.listeners.reset()
	c.group = group
	if c.active.Valid() && !c.active.In(len(group)) {
		c.log.Error("focus failed: active position past end of group",
			"position", int(c.active), "members", len(group))
		c.active = None
	}
	c.listeners.rebuild(c.group)
}

func (c *Controller) teardown() {
	c.listeners.reset()
	c.group = nil
	c.active = None
	c.debug("group torn down", "generation", c.gen)
}

func (c *Controller) setActive(p Position) {
	if p == c.active {
		return
	}
	c.active = p
	c.listeners.rebuild(c.group)
	c.focusActive()
}

func (c *Controller) focusActive() {
	if !c.active.Valid() || len(c.group) == 0 {
		return
	}
	if !c.active.In(len(c.group)) {
		c.log.Error("focus failed: node does not exist",
			"position", int(c.active), "members", len(c.group))
		return
	}
	c.group[c.active].Focus()
}

func (c *Controller) autoFocus(gen uint64, first *element.Node) {
	_, span := c.tracer.Start(context.Background(), "tabgroup.autofocus")
	defer span.End()

	stale := gen != c.gen
	span.SetAttributes(attribute.Bool("tabgroup.stale", stale))
	if stale {
		c.debug("dropping stale auto-focus", "scheduled", gen, "generation", c.gen)
		return
	}

	c.debug("auto-focus", "passive", c.opts.PassiveAutoFocus)
	if c.opts.PassiveAutoFocus {
		c.ignoreFocus = true
		first.Focus()
		c.ignoreFocus = false
		return
	}
	c.setActive(0)
}

func (c *Controller) onKeyDown(node *element.Node, ev *element.Event, shiftHeld bool) {
	dir := c.dispatch.Interpret(ev, shiftHeld)
	if dir == NoMove {
		return
	}
	ev.PreventDefault()
	if len(c.group) == 0 {
		return
	}

	_, span := c.tracer.Start(context.Background(), "tabgroup.navigate")
	defer span.End()

	from := c.active
	next := Advance(from, dir, len(c.group))
	span.SetAttributes(
		attribute.String("tabgroup.key", ev.String()),
		attribute.String("tabgroup.direction", dir.String()),
		attribute.Int("tabgroup.from", int(from)),
		attribute.Int("tabgroup.to", int(next)),
	)
	c.debug("navigate", "key", ev.String(), "direction", dir.String(), "from", int(from), "to", int(next))
	c.setActive(next)
}

func (c *Controller) onFocus(node *element.Node) {
	if c.ignoreFocus {
		return
	}
	p := SyncFromExternalFocus(c.group, node)
	if !p.Valid() {
		c.debug("ignoring focus on node outside the group")
		return
	}
	c.setActive(p)
}

func (c *Controller) debug(msg string, args ...any) {
	if c.opts.Debug {
		c.log.Debug(msg, args...)
	}
}
