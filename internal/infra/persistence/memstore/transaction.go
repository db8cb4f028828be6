package memstore

import (
	"context"
	"sync"

	"gtfstrigger/internal/domain/repository"
)

// transactionManager serializes grouped writes. The collection has no rollback,
// so a failing fn leaves the writes it already made in place.
type transactionManager struct {
	mu   sync.Mutex
	repo repository.SubscriptionRepository
}

type repositoryFactory struct {
	repo repository.SubscriptionRepository
}

func (f *repositoryFactory) NewSubscriptionRepository() repository.SubscriptionRepository {
	return f.repo
}

// NewTransactionManager returns a TransactionManager whose factory hands out repo.
func NewTransactionManager(repo repository.SubscriptionRepository) repository.TransactionManager {
	return &transactionManager{repo: repo}
}

func (tm *transactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return fn(&repositoryFactory{repo: tm.repo})
}
