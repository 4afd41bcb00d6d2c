package client

import "errors"

var ErrMissingDependency = errors.New("client app: missing dependency")
