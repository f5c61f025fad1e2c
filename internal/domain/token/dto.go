package token

// GeneratedToken is the issuance result handed to the dashboard: the stored
// token plus everything the operator needs to display or print the QR.
type GeneratedToken struct {
	Token     Token  `json:"-"`
	Value     string `json:"token"`
	Area      string `json:"area"`
	ExpiresAt string `json:"expires_at"`
	ScanLink  string `json:"scan_link"`
	ImageURL  string `json:"image_url"`
}
