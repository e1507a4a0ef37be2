package xsect

// CheckSpinSum exposes the advisory spin-sum check to the external tests.
var CheckSpinSum = (*Engine).checkSpinSum
