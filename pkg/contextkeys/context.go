package contextkeys

// ContextKey is the type for keys stored in request contexts.
type ContextKey string

// DBContextKey carries the *gorm.DB handle (pool, or a transaction when a
// test wraps the request in one) through the request context.
const DBContextKey ContextKey = "db"
