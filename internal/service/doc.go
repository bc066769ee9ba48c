// Package service implements the business logic layer for the Superheroes API.
//
// Services fetch, validate and mutate heroes, powers and their associations.
// Every read that spans more than one query, and every write, runs inside a
// single transaction obtained from the Transactor, so a failure part way
// leaves nothing behind.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Methods return projections from the model package, never raw rows
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through for cancellation and carries the transaction
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from specific database implementations
//
// # Error Handling
//
//	var (
//	    ErrHeroNotFound  = errors.New("hero not found")
//	    ErrPowerNotFound = errors.New("power not found")
//	    ErrValidation    = errors.New("validation failed")
//	)
//
// Validation failures wrap ErrValidation with the cause:
//
//	if errors.Is(err, service.ErrValidation) {
//	    // 400
//	}
//
// # Example Usage
//
//	svc := NewHeroPowerService(HeroPowerServiceConfig{
//	    Transactor:    database.NewTransactor(db),
//	    HeroRepo:      repository.NewHeroRepository(db),
//	    PowerRepo:     repository.NewPowerRepository(db),
//	    HeroPowerRepo: repository.NewHeroPowerRepository(db),
//	})
//	detail, err := svc.CreateHeroPower(ctx, &req)
package service
