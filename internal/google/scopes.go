package google

// CalendarScopes are the Google OAuth scopes required by the calendar
// service. Full calendar access is needed for event creation, updates and
// deletion; the events scope alone does not cover quick-add.
var CalendarScopes = []string{
	"https://www.googleapis.com/auth/calendar",
}
