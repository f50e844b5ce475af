package agent

import (
	"errors"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrMissingProjectID means the embedding site did not supply a tenant
	// id. This is fatal to the tracker instance: no instrumentation happens,
	// and nothing is surfaced to the page beyond this error.
	ErrMissingProjectID = errors.New("project id is required")

	ErrMissingEndpoint = errors.New("at least one endpoint or transport is required")
	ErrMissingDocument = errors.New("document is required")
)

const (
	defaultFormSelector = "form"
	defaultDebounce     = 300 * time.Millisecond
)

// Tracker is the capture agent for one page load. It discovers forms,
// listens for interaction events, and feeds the delivery buffer. One
// instance owns all per-page state: the focus map, the submitted-form set,
// and the buffer; everything is torn down implicitly with the page.
type Tracker struct {
	cfg       Config
	doc       Document
	buf       *Buffer
	log       *zap.Logger
	now       func() time.Time
	sessionID string
	pageStart time.Time

	mu         sync.Mutex
	focusStart map[string]time.Time
	submitted  map[Element]struct{}
	anySubmit  bool
	finished   bool
	started    bool
}

func New(doc Document, cfg Config) (*Tracker, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if doc == nil {
		return nil, ErrMissingDocument
	}
	if cfg.ProjectID == "" {
		log.Warn("form tracking disabled: no project id configured")
		return nil, ErrMissingProjectID
	}

	if len(cfg.Transports) == 0 {
		if len(cfg.Endpoints) == 0 {
			return nil, ErrMissingEndpoint
		}
		for _, ep := range cfg.Endpoints {
			cfg.Transports = append(cfg.Transports, NewHTTPTransport(ep))
		}
	}

	if cfg.FormSelector == "" {
		cfg.FormSelector = defaultFormSelector
	}
	if cfg.Debounce == 0 {
		cfg.Debounce = defaultDebounce
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	start := now()
	sessionID := newSessionID(start)

	return &Tracker{
		cfg:        cfg,
		doc:        doc,
		buf:        newBuffer(cfg.ProjectID, sessionID, cfg.Debounce, cfg.Transports, log),
		log:        log,
		now:        now,
		sessionID:  sessionID,
		pageStart:  start,
		focusStart: make(map[string]time.Time),
		submitted:  make(map[Element]struct{}),
	}, nil
}

// SessionID returns the ephemeral identifier for this page load.
func (t *Tracker) SessionID() string {
	return t.sessionID
}

// Start runs form discovery, subscribes to structural mutations so forms
// added later get instrumented too, and hooks the page teardown signals.
// Calling Start more than once is a no-op.
func (t *Tracker) Start() {
	t.mu.Lock()
	if t.started {
		t.mu.Unlock()
		return
	}
	t.started = true
	t.mu.Unlock()

	t.discover()
	t.doc.ObserveMutations(t.discover)

	for _, ev := range Lifecycles {
		t.doc.OnLifecycle(ev, t.teardown)
	}
}

// discover instruments every matching form not yet marked. Safe to run any
// number of times over the same tree: the bound marker on forms and fields
// keeps listeners from being registered twice.
func (t *Tracker) discover() {
	for _, form := range t.doc.QuerySelectorAll(t.cfg.FormSelector) {
		t.instrumentForm(form)
	}
}

func (t *Tracker) instrumentForm(form Element) {
	if form.Attr(boundAttr) == "" {
		form.SetAttr(boundAttr, "1")
		f := form
		form.AddEventListener(domSubmit, func() { t.onSubmit(f) })
	}

	// Fields are marked independently of the form: a re-discovery over an
	// already-bound form still picks up fields inserted since.
	for _, field := range form.Fields() {
		if field.Attr(boundAttr) != "" {
			continue
		}
		field.SetAttr(boundAttr, "1")

		name := resolveFieldLabel(field)
		field.AddEventListener(domFocus, func() { t.onFocus(name) })
		field.AddEventListener(domBlur, func() { t.onBlur(name) })
		field.AddEventListener(domInput, func() { t.onInput(name) })
		field.AddEventListener(domChange, func() { t.onInput(name) })
	}
}

func (t *Tracker) onFocus(name string) {
	t.mu.Lock()
	if t.finished {
		t.mu.Unlock()
		return
	}
	t.focusStart[name] = t.now()
	t.mu.Unlock()

	t.emit(Event{Type: "focus", FieldName: name})
}

func (t *Tracker) onBlur(name string) {
	t.mu.Lock()
	if t.finished {
		t.mu.Unlock()
		return
	}
	var duration *int64
	if start, ok := t.focusStart[name]; ok {
		d := t.now().Sub(start).Milliseconds()
		duration = &d
		delete(t.focusStart, name)
	}
	t.mu.Unlock()

	t.emit(Event{Type: "blur", FieldName: name, Duration: duration})
}

func (t *Tracker) onInput(name string) {
	t.mu.Lock()
	done := t.finished
	t.mu.Unlock()
	if done {
		return
	}

	t.emit(Event{Type: "input", FieldName: name})
}

// onSubmit fires at most once per form instance. Fields that were focused
// but never blurred get a terminal abandon carrying their dwell time before
// the submit itself is recorded.
func (t *Tracker) onSubmit(form Element) {
	t.mu.Lock()
	if t.finished {
		t.mu.Unlock()
		return
	}
	if _, done := t.submitted[form]; done {
		t.mu.Unlock()
		return
	}
	t.submitted[form] = struct{}{}
	t.anySubmit = true
	open := t.drainFocusLocked()
	t.mu.Unlock()

	t.emitAbandons(open)
	t.emit(Event{Type: "submit"})
	t.buf.Flush()
}

// teardown handles the first lifecycle signal; later ones are no-ops. An
// unsubmitted page yields one page-level abandon plus one per still-focused
// field, then everything pending is flushed while the page still exists.
func (t *Tracker) teardown() {
	t.mu.Lock()
	if t.finished {
		t.mu.Unlock()
		return
	}
	t.finished = true
	submitted := t.anySubmit
	open := t.drainFocusLocked()
	t.mu.Unlock()

	if !submitted {
		d := t.now().Sub(t.pageStart).Milliseconds()
		t.enqueue(Event{Type: "abandon", Duration: &d})
		t.emitAbandons(open)
	}

	t.buf.Flush()
}

type openFocus struct {
	name  string
	start time.Time
}

// drainFocusLocked empties the focus map and returns its entries in a
// deterministic order. Caller holds t.mu.
func (t *Tracker) drainFocusLocked() []openFocus {
	open := make([]openFocus, 0, len(t.focusStart))
	for name, start := range t.focusStart {
		open = append(open, openFocus{name: name, start: start})
	}
	t.focusStart = make(map[string]time.Time)

	sort.Slice(open, func(i, j int) bool { return open[i].name < open[j].name })
	return open
}

func (t *Tracker) emitAbandons(open []openFocus) {
	for _, f := range open {
		d := t.now().Sub(f.start).Milliseconds()
		t.enqueue(Event{Type: "abandon", FieldName: f.name, Duration: &d})
	}
}

func (t *Tracker) emit(e Event) {
	t.mu.Lock()
	done := t.finished
	t.mu.Unlock()
	if done {
		return
	}
	t.enqueue(e)
}

func (t *Tracker) enqueue(e Event) {
	e.OccurredAt = t.now().UnixMilli()
	t.buf.Enqueue(e)
}

// Flush forces delivery of everything pending. Exposed for embedders that
// know the page is about to go away through a path the tracker cannot see.
func (t *Tracker) Flush() {
	t.buf.Flush()
}
