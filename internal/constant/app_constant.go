package constant

import "time"

const (
	DefaultNamespace = "eduai"

	SessionCookieName = "eduai_session"

	PasswordMinLength = 6
	PasswordMaxLength = 8

	PasswordLengthMessage = "Password must be between 6 and 8 characters."
	WelcomeMessageFormat  = "Welcome back, %s!"

	DefaultLoginDelay = 1 * time.Second
	DefaultToastTTL   = 3 * time.Second
	DefaultSessionTTL = 12 * time.Hour

	EventUserLogin         = "USER_LOGIN"
	EventUserLogout        = "USER_LOGOUT"
	EventAssistantResolved = "ASSISTANT_RESOLVED"
)
