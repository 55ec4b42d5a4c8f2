package internship

import "errors"

var ErrInternshipNotFound = errors.New("internship not found")
