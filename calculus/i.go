package calculus

// Func is a scalar function of one real variable. Implementations must be
// pure: the root finders call them from many goroutines at once.
type Func func(x float64) float64
