package services

// ServiceContainer bundles every service for wiring in app.SetupRouter.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	JobService          JobService
	ApplicationService  ApplicationService
	ProfileService      ProfileService
	NotificationService NotificationService
}
