package uploadlink

import "errors"

var (
	ErrLinkNotFound = errors.New("upload link not found")
	ErrLinkExpired  = errors.New("upload link expired")
	ErrLinkUsed     = errors.New("upload link already used")
)

// IsRedeemFailure reports whether err is one of the three redemption
// failures that collapse into a single message on the public surface.
func IsRedeemFailure(err error) bool {
	return errors.Is(err, ErrLinkNotFound) ||
		errors.Is(err, ErrLinkExpired) ||
		errors.Is(err, ErrLinkUsed)
}
