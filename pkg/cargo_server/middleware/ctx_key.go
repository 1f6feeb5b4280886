package middleware

// keys of values stored in context
type MiddleWareContextKey string

const (
	OPERATOR = MiddleWareContextKey("operator") // The context value is a string naming the acting operator.
)
