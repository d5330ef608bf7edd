package k8s

import "errors"

var (
	ErrTransport        = errors.New("kubectl query failed")
	ErrDecode           = errors.New("decode kubectl output")
	ErrNoCurrentContext = errors.New("no current context")
)
