package entity

// Setting keys read by the credential resolver.
const (
	SettingGoogleClientID     = "GOOGLE_CLIENT_ID"
	SettingGoogleClientSecret = "GOOGLE_CLIENT_SECRET"
)

// Setting is an operator-editable key/value pair.
type Setting struct {
	Key   string
	Value string
}
