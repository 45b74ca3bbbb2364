package auth

// Args carries the command-line parameters relevant to a login or logout.
// The command layer populates it from flags; the handler never reads flags
// directly.
type Args struct {
	Host string
	Port int

	User     string
	Password string

	TokenType  string
	TokenValue string

	// ShowToken prints the obtained token instead of persisting it.
	ShowToken bool
}
