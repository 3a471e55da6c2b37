// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"gsync/internal/domain/repository"
	"gsync/internal/domain/service"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db     *gorm.DB
	cipher service.TokenCipher
}

// gormRepositoryFactory hands out repositories bound to a single transaction.
type gormRepositoryFactory struct {
	tx     *gorm.DB
	cipher service.TokenCipher
}

// NewTokenRepository creates a token repository bound to the transaction.
func (f *gormRepositoryFactory) NewTokenRepository() repository.TokenRepository {
	return NewTokenRepository(f.tx, f.cipher)
}

// NewProgressRepository creates a progress repository bound to the transaction.
func (f *gormRepositoryFactory) NewProgressRepository() repository.ProgressRepository {
	return NewProgressRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB, cipher service.TokenCipher) repository.TransactionManager {
	return &gormTransactionManager{db: db, cipher: cipher}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	err := fn(&gormRepositoryFactory{tx: tx, cipher: tm.cipher})
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
