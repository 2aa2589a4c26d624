package contextkeys

// ContextKey is a dedicated type so context values cannot collide with keys
// set by other packages.
type ContextKey string

const (
	// DBContextKey carries the *gorm.DB handle (the shared pool, or an open
	// transaction in tests) through request contexts and gin.Context.
	DBContextKey ContextKey = "db"
)
