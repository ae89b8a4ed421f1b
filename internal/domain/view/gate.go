package view

// Gate applies the access-control table for protected screens. Dashboard is
// the only protected screen; without a session the target downgrades to the
// login screen. This is a policy substitution, not an error.
func Gate(target Screen, sessionPresent bool) Screen {
	if target == ScreenDashboard && !sessionPresent {
		return ScreenLogin
	}
	return target
}
