package githubapi

// Export unexported functions for testing
var (
	ClassifyForTest = func(statusCode int, err error, decoded bool) string {
		return classify(statusCode, err, decoded).String()
	}
)
