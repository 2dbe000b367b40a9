// Package timezone pins every timestamp the service writes or renders to one
// zone, read from APP_TIMEZONE at startup.
//
// Column defaults such as created_at, the JWT issue time and the default
// payment date all come from Now, so a hostel running on Asia/Kolkata books a
// payment made at 00:30 local time on that local day, not the UTC one.
//
//	now := timezone.Now()
//	shown := timezone.Format(*admin.LastLogin, constant.DateFormat)
//	start, err := timezone.Parse(time.DateOnly, "2024-03-01")
//
// An unset or invalid APP_TIMEZONE falls back to UTC with an error logged.
package timezone
