package tensor

// Helpers exposing package internals to the external test package.

// SetMemBudgetForTest overrides the allocation accountant's budget and
// returns a restore function.
func SetMemBudgetForTest(n int64) (restore func()) {
	old := memBudget.Load()
	memBudget.Store(n)
	return func() { memBudget.Store(old) }
}
