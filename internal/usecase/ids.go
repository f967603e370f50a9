package usecase

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Next(prefix string) string
}
