package exitcode

const (
	Success     = 0
	UsageError  = 1
	ReadError   = 2
	ParseError  = 3
	DBConnError = 4
	PrefsError  = 5
	ServeError  = 6
	WriteError  = 7
)
