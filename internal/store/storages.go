package store

import "github.com/MKhiriev/bootcamp-api/internal/logger"

// Storages groups every repository backed by the same connection pool.
type Storages struct {
	UserRepository     UserRepository
	BootcampRepository BootcampRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		BootcampRepository: NewBootcampRepository(db, logger),
	}
}
