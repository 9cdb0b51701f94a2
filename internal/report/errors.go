package report

import "errors"

// ErrUnknownFormat is returned for a snapshot format other than json or yaml.
var ErrUnknownFormat = errors.New("unknown snapshot format")
