// Package repository implements the data access layer for the Superheroes API.
//
// Each repository struct handles one table: HeroRepository, PowerRepository
// and HeroPowerRepository (the join table carrying strength).
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database.Database
//   - Queries are built with go-sqlbuilder in the connection's flavor, so
//     placeholders come out right for SQLite and PostgreSQL alike
//   - Statements run on db.Conn(ctx), which is the open transaction when the
//     caller is inside database.WithTransaction
//   - Every method opens a tracing span named repository.<Type>.<Method>
//
// # Not Found
//
// GetByID returns (nil, nil) for a missing row. Update returns
// database.ErrNotFound when nothing matched.
//
// # Example Usage
//
//	repo := NewHeroRepository(db)
//	hero, err := repo.GetByID(ctx, 1)
//	if err != nil {
//	    return err
//	}
//	if hero == nil {
//	    // Handle not found
//	}
package repository
