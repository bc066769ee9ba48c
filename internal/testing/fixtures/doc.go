// Package fixtures provides test data factories for the Superheroes API.
//
// # Factory Pattern
//
// Create a factory with a database connection:
//
//	f := fixtures.New(tdb.DB)
//
// # Creating Test Data
//
//	hero := f.CreateHero(t)                        // Random hero
//	power := f.CreatePower(t)                      // Valid description
//	f.CreateHeroPower(t, hero, power, "Strong")    // Link them
//
// # Customization
//
// Use option functions for customization:
//
//	hero := f.CreateHero(t, fixtures.WithSuperName("Ms. Marvel"))
//	power := f.CreatePower(t, fixtures.WithPowerName("flight"))
//
// # Cleanup
//
// Test data goes away with the test database.
package fixtures
