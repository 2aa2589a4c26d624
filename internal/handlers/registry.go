package handlers

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	Auth    *AuthHandler
	Job     *JobHandler
	Profile *ProfileHandler
	Admin   *AdminHandler
}
