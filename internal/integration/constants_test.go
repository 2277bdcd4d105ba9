package integration_test

const (
	testPassword = "Password123!"

	userEmail  = "stargazer@example.com"
	userName   = "Stargazer"
	staffEmail = "staff@example.com"
	staffName  = "Dome Operator"

	// Seeded by testdata/catalog.sql.
	domeID          = 1
	domeRows        = 25
	domeSeatsInRow  = 25
	smallDomeID     = 2
	showID          = 1
	otherShowID     = 2
	sessionID       = 1
	otherSessionID  = 2
	smallSessionID  = 3
	deepSpaceTheme  = 1
	solarTheme      = 2
	emptyTheme      = 3
	seededShowCount = 3
)
