package models

// Page is a navigation target.
type Page string

const (
	PageSignup    Page = "signup"
	PageLogin     Page = "login"
	PageDashboard Page = "dashboard"
)
