package server

import "errors"

var errNoAddressConfigured = errors.New("no server address configured")
