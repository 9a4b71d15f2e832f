package utils

// Ptr returns a pointer to v, for optional request fields set from literals.
//
//	req.CreditScore = utils.Ptr(720)
func Ptr[T any](v T) *T {
	return &v
}
