package config

func GetSessionCookieName() string {
	return GetEnvOrDefault("SESSION_COOKIE_NAME", "chatwidget_session")
}

// GetSessionSecret returns the HMAC secret used to sign session tokens.
// The default is only suitable for local development.
func GetSessionSecret() string {
	return GetEnvOrDefault("SESSION_SECRET", "dev-session-secret")
}
