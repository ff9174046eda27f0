package consts

// Characters with routing significance.
const (
	RuneFwdSlash    = '/'
	RuneColon       = ':'
	RuneAsterisk    = '*'
	RuneQuestion    = '?'
	RuneHash        = '#'
	RuneSingleSpace = ' '
)

const (
	StrSlash        = "/"
	StrEmpty        = ""
	SchemeDelimiter = "://"
	Localhost       = "localhost"
)

// Default paths used when the application does not configure its own.
const (
	DefaultPath   = "/"
	ReloadWSPath  = "/_sproute/reload"
	IndexTemplate = "index.html"
)
