package globals

// Context keys
type ContextKey string

const (
	UserIDKey    ContextKey = "userId"
	UserEmailKey ContextKey = "userEmail"
	RequestIDKey ContextKey = "requestId"
)
