package types

// Token types understood by the auth layer. A service provider picks its
// default; callers may override on the command line.
const (
	TokenTypeJWT    = "jwt"
	TokenTypeBearer = "bearer"
	TokenTypeAPIKey = "apiKey"
)

// Token pairs a token type with its opaque value.
type Token struct {
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

// Property names under which a token is stored inside a profile.
const (
	TokenTypeProperty  = "tokenType"
	TokenValueProperty = "tokenValue"
)
