package handlers

import (
	"net/http"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// GraphQLHandler serves the single GraphQL endpoint: queries and
// mutations over POST, and the GraphiQL exploration page over GET when
// enabled.
type GraphQLHandler struct {
	relay    *relay.Handler
	graphiql bool
}

// NewGraphQLHandler creates a new GraphQLHandler instance
func NewGraphQLHandler(schema *graphql.Schema, enableGraphiQL bool) *GraphQLHandler {
	return &GraphQLHandler{
		relay:    &relay.Handler{Schema: schema},
		graphiql: enableGraphiQL,
	}
}

// GraphQL handles requests to /graphql
func (h *GraphQLHandler) GraphQL(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.relay.ServeHTTP(w, r)
	case http.MethodGet:
		if !h.graphiql {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(graphiqlPage))
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
