package services

import "time"

// SetClock pins the clock used by session and dashboard services.
func SetClock(svc any, now func() time.Time) {
	switch s := svc.(type) {
	case *SessionService:
		s.now = now
	case *dashboardService:
		s.now = now
	}
}
