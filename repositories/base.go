package repositories

import "errors"

// ErrNotFound is returned by every repository when a record does not exist,
// hiding gorm.ErrRecordNotFound from the layers above.
var ErrNotFound = errors.New("record not found")
