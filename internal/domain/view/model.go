package view

import (
	"fmt"

	"github.com/eishan-studio/eishan/internal/domain/project"
)

// Screen identifies one of the named application screens.
type Screen string

const (
	ScreenHome      Screen = "home"
	ScreenOil       Screen = "oil"
	ScreenLogin     Screen = "login"
	ScreenRegister  Screen = "register"
	ScreenDashboard Screen = "dashboard"
	ScreenProject   Screen = "project"
)

// screenLabels maps each navigable screen to the label shown on the
// transition overlay. Project detail uses the project title instead.
var screenLabels = map[Screen]string{
	ScreenHome:      "الرئيسية",
	ScreenOil:       "قطاع النفط والطاقة",
	ScreenLogin:     "تسجيل الدخول",
	ScreenRegister:  "إنشاء حساب",
	ScreenDashboard: "لوحة التحكم",
}

// ParseScreen converts a wire value into a navigable Screen. Project detail
// is excluded: it is only reachable through RequestProject.
func ParseScreen(s string) (Screen, error) {
	switch Screen(s) {
	case ScreenHome, ScreenOil, ScreenLogin, ScreenRegister, ScreenDashboard:
		return Screen(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScreen, s)
}

// State is the single currently-displayed screen. Project is set only when
// Screen is ScreenProject and always refers to a published record.
type State struct {
	Screen  Screen
	Project *project.Record
}

// Label returns the overlay label for the state.
func (s State) Label() string {
	if s.Screen == ScreenProject && s.Project != nil {
		return s.Project.Title
	}
	return screenLabels[s.Screen]
}

// Transition is the ephemeral overlay shown while one screen change is in
// flight. It is discarded when the overlay lifts.
type Transition struct {
	To    State
	Label string
}
