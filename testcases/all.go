package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in exported test case names.
var All = map[string][]TestCase{
	"uniform": uniformCases,
	"pattern": patternCases,
	"edge":    edgeCases,
}
