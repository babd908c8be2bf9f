package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AccountRepository   *AccountRepository
	StudentRepository   *StudentRepository
	MarksheetRepository *MarksheetRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AccountRepository:   NewAccountRepository(db),
		StudentRepository:   NewStudentRepository(db),
		MarksheetRepository: NewMarksheetRepository(db),
	}
}
