package repository

import "context"

// TransactionManager defines the interface for managing store transactions.
// This allows the use case layer to group writes without depending on a specific store.
type TransactionManager interface {
	// Execute runs a function within a transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// Stores without transactions run fn directly against the shared repositories.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	// NewSubscriptionRepository returns a SubscriptionRepository bound to the current transaction.
	NewSubscriptionRepository() SubscriptionRepository
}
