package middleware

import (
	"context"
	"net/http"
)

// OperatorHeader carries the name of the acting operator. Every mutating
// endpoint records it in the audit trail.
const OperatorHeader = "X-Operator"

// ExtractOperator rejects mutating requests without an operator header and
// stores the operator name in the request context.
func ExtractOperator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		operator := r.Header.Get(OperatorHeader)
		if operator == "" && r.Method != http.MethodGet {
			http.Error(w, "missing "+OperatorHeader+" header", http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(r.Context(), OPERATOR, operator)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
