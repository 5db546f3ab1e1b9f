package config

import "os"

// Environment access, replaceable in tests.
var (
	lookupEnv = os.LookupEnv
	setEnv    = os.Setenv
)
