package kernels

const (
	DefaultNumberOfPoints = 500

	// Fractions of the kernel asymptote that pin the default time bounds:
	// tMax is where the slowest kernel reaches 90% of its asymptote, tMin
	// where the fastest reaches 10%.
	slowTailFraction = 0.1
	fastHeadFraction = 0.9

	// 5% headroom above the largest asymptotic level
	displayHeadroom = 1.05
)
