package agent

// DOM event names the tracker subscribes to.
const (
	domFocus  = "focus"
	domBlur   = "blur"
	domInput  = "input"
	domChange = "change"
	domSubmit = "submit"
)

// boundAttr marks an element as already instrumented so that re-running
// discovery over the same tree never registers a second set of listeners.
const boundAttr = "data-formsight-bound"

// LifecycleEvent is a signal that the page may be about to be discarded.
type LifecycleEvent string

const (
	LifecyclePageHide LifecycleEvent = "pagehide"
	LifecycleHidden   LifecycleEvent = "visibilityhidden"
	LifecycleUnload   LifecycleEvent = "beforeunload"
)

// Lifecycles lists every teardown signal the tracker hooks. Any one of them
// can be the last code to run before the page is gone.
var Lifecycles = []LifecycleEvent{LifecyclePageHide, LifecycleHidden, LifecycleUnload}

// Document is the slice of the host page the tracker needs. Implementations
// bridge to a real DOM; tests use an in-memory page.
type Document interface {
	// QuerySelectorAll returns the elements currently matching selector.
	QuerySelectorAll(selector string) []Element

	// ObserveMutations registers fn to run whenever nodes are inserted into
	// the tree. The watch must be push-based (a structural observer), not a
	// poll; fn re-runs form discovery.
	ObserveMutations(fn func())

	// OnLifecycle registers fn for one of the page teardown signals.
	OnLifecycle(event LifecycleEvent, fn func())
}

// Element is one node in the observed page. The tracker only ever reads
// attributes and wires listeners; it has no access to field values.
type Element interface {
	// Attr returns an attribute value, or "" when the attribute is absent.
	Attr(name string) string

	// SetAttr sets an attribute. Used only for the bound marker.
	SetAttr(name, value string)

	// Fields returns the input-like descendants of a form element.
	Fields() []Element

	// AddEventListener registers fn for a DOM event on this element.
	AddEventListener(event string, fn func())
}
