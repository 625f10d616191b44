package contextkeys

// Custom key type to avoid collisions with other context values.
type contextKey string

// DBContextKey is the key under which the *gorm.DB handle (connection pool
// or an open transaction) travels through request contexts.
const DBContextKey = contextKey("db")
