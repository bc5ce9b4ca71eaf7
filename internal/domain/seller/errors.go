package seller

import "errors"

var ErrSellerNotFound = errors.New("seller not found")
