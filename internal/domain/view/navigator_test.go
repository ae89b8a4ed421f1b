package view_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/eishan-studio/eishan/internal/domain/project"
	"github.com/eishan-studio/eishan/internal/domain/view"
	"github.com/eishan-studio/eishan/internal/domain/view/viewtest"
)

type staticSessions bool

func (s staticSessions) Present() bool { return bool(s) }

func newNavigator(t *testing.T, sessions view.SessionSource) (*view.Navigator, *viewtest.Scheduler) {
	t.Helper()
	sched := viewtest.NewScheduler()
	nav, err := view.NewNavigator(view.Options{
		Scheduler: sched,
		Sessions:  sessions,
	})
	require.NoError(t, err)
	return nav, sched
}

func TestNavigatorRejectsInvertedDelays(t *testing.T) {
	_, err := view.NewNavigator(view.Options{
		CoverDelay:  time.Second,
		RevealDelay: 500 * time.Millisecond,
	})
	require.ErrorIs(t, err, view.ErrInvalidDelays)
}

func TestNavigatorTwoPhaseTransition(t *testing.T) {
	nav, sched := newNavigator(t, nil)

	require.True(t, nav.Request(view.ScreenOil))
	require.Equal(t, view.PhaseCovering, nav.Phase())
	require.Equal(t, view.ScreenHome, nav.State().Screen)

	tr, ok := nav.Overlay()
	require.True(t, ok)
	require.Equal(t, "قطاع النفط والطاقة", tr.Label)

	// State swaps at the cover delay but the overlay stays up.
	sched.Advance(view.DefaultCoverDelay)
	require.Equal(t, view.PhaseRevealing, nav.Phase())
	require.Equal(t, view.ScreenOil, nav.State().Screen)
	_, ok = nav.Overlay()
	require.True(t, ok)

	// Overlay lifts at the reveal delay, measured from the start.
	sched.Advance(view.DefaultRevealDelay - view.DefaultCoverDelay)
	require.Equal(t, view.PhaseIdle, nav.Phase())
	_, ok = nav.Overlay()
	require.False(t, ok)
	require.Equal(t, view.ScreenOil, nav.State().Screen)
}

func TestNavigatorDropsRequestsInFlight(t *testing.T) {
	nav, sched := newNavigator(t, nil)

	require.True(t, nav.Request(view.ScreenOil))
	require.False(t, nav.Request(view.ScreenLogin), "covering phase must drop")

	sched.Advance(view.DefaultCoverDelay)
	require.False(t, nav.Request(view.ScreenLogin), "revealing phase must drop")

	sched.Advance(view.DefaultRevealDelay - view.DefaultCoverDelay)
	require.Equal(t, view.ScreenOil, nav.State().Screen)
	require.True(t, nav.Request(view.ScreenLogin), "idle accepts again")
}

func TestNavigatorSelfTransition(t *testing.T) {
	nav, sched := newNavigator(t, nil)

	require.True(t, nav.Request(view.ScreenHome))
	sched.Advance(view.DefaultRevealDelay)
	require.Equal(t, view.ScreenHome, nav.State().Screen)
	require.Equal(t, view.PhaseIdle, nav.Phase())
}

func TestNavigatorGatesDashboard(t *testing.T) {
	nav, sched := newNavigator(t, staticSessions(false))

	require.True(t, nav.Request(view.ScreenDashboard))
	tr, ok := nav.Overlay()
	require.True(t, ok)
	require.Equal(t, view.ScreenLogin, tr.To.Screen)
	require.Equal(t, "تسجيل الدخول", tr.Label)

	sched.Advance(view.DefaultRevealDelay)
	require.Equal(t, view.ScreenLogin, nav.State().Screen)
}

func TestNavigatorDashboardWithSession(t *testing.T) {
	nav, sched := newNavigator(t, staticSessions(true))

	require.True(t, nav.Request(view.ScreenDashboard))
	sched.Advance(view.DefaultRevealDelay)
	require.Equal(t, view.ScreenDashboard, nav.State().Screen)
}

func TestNavigatorProjectDetail(t *testing.T) {
	nav, sched := newNavigator(t, nil)
	rec := &project.Record{ID: "p1", Title: "فيلا الياسمين"}

	require.False(t, nav.RequestProject(nil))

	require.True(t, nav.RequestProject(rec))
	tr, ok := nav.Overlay()
	require.True(t, ok)
	require.Equal(t, "فيلا الياسمين", tr.Label)

	sched.Advance(view.DefaultRevealDelay)
	state := nav.State()
	require.Equal(t, view.ScreenProject, state.Screen)
	require.Equal(t, "p1", state.Project.ID)
}

func TestNavigatorPostLoginRedirect(t *testing.T) {
	present := false
	nav, sched := newNavigator(t, staticSessionsFunc(func() bool { return present }))

	require.True(t, nav.Request(view.ScreenLogin))
	sched.Advance(view.DefaultRevealDelay)
	require.Equal(t, view.ScreenLogin, nav.State().Screen)

	present = true
	nav.OnSessionChange(true)
	require.Equal(t, view.PhaseCovering, nav.Phase())
	sched.Advance(view.DefaultRevealDelay)
	require.Equal(t, view.ScreenDashboard, nav.State().Screen)
}

func TestNavigatorRedirectDroppedInFlightNotRetried(t *testing.T) {
	present := false
	nav, sched := newNavigator(t, staticSessionsFunc(func() bool { return present }))

	require.True(t, nav.Request(view.ScreenLogin))
	sched.Advance(view.DefaultRevealDelay)

	// Start an unrelated transition, then establish the session mid-flight.
	require.True(t, nav.Request(view.ScreenHome))
	present = true
	nav.OnSessionChange(true)

	sched.Advance(view.DefaultRevealDelay)
	require.Equal(t, view.ScreenHome, nav.State().Screen, "dropped redirect must not be retried")
	require.Equal(t, view.PhaseIdle, nav.Phase())
}

func TestNavigatorRedirectOnlyFromAuthScreens(t *testing.T) {
	nav, sched := newNavigator(t, staticSessions(true))

	nav.OnSessionChange(true)
	require.Equal(t, view.PhaseIdle, nav.Phase(), "home screen ignores session arrival")

	// Session loss never moves the screen.
	require.True(t, nav.Request(view.ScreenOil))
	sched.Advance(view.DefaultRevealDelay)
	nav.OnSessionChange(false)
	require.Equal(t, view.ScreenOil, nav.State().Screen)
}

func TestNavigatorEpochIncrementsPerCommit(t *testing.T) {
	nav, sched := newNavigator(t, nil)
	require.Equal(t, uint64(0), nav.Snapshot().Epoch)

	require.True(t, nav.Request(view.ScreenOil))
	require.Equal(t, uint64(0), nav.Snapshot().Epoch, "epoch bumps at commit, not at start")

	sched.Advance(view.DefaultCoverDelay)
	require.Equal(t, uint64(1), nav.Snapshot().Epoch)

	sched.Advance(view.DefaultRevealDelay - view.DefaultCoverDelay)
	require.True(t, nav.Request(view.ScreenHome))
	sched.Advance(view.DefaultRevealDelay)
	require.Equal(t, uint64(2), nav.Snapshot().Epoch)
}

type recordingLifecycle struct {
	calls *[]string
	tag   string
}

func (l recordingLifecycle) Exit(s view.State)  { *l.calls = append(*l.calls, l.tag+" exit "+string(s.Screen)) }
func (l recordingLifecycle) Enter(s view.State) { *l.calls = append(*l.calls, l.tag+" enter "+string(s.Screen)) }

func TestNavigatorLifecycleOrdering(t *testing.T) {
	nav, sched := newNavigator(t, nil)
	var calls []string
	nav.AddLifecycle(recordingLifecycle{calls: &calls, tag: "a"})
	nav.AddLifecycle(recordingLifecycle{calls: &calls, tag: "b"})

	require.True(t, nav.Request(view.ScreenOil))
	sched.Advance(view.DefaultCoverDelay)

	require.Equal(t, []string{"a exit home", "b exit home", "a enter oil", "b enter oil"}, calls)
}

func TestNavigatorEvents(t *testing.T) {
	nav, sched := newNavigator(t, nil)
	var events []view.EventType
	nav.Watch(func(ev view.Event) { events = append(events, ev.Type) })

	require.True(t, nav.Request(view.ScreenOil))
	sched.Advance(view.DefaultRevealDelay)

	require.Equal(t, []view.EventType{view.EventCover, view.EventCommit, view.EventReveal}, events)
}

// staticSessionsFunc adapts a closure to view.SessionSource.
type staticSessionsFunc func() bool

func (f staticSessionsFunc) Present() bool { return f() }
