package repositories_test

import (
	"errors"
	"testing"

	"gerai/internal/models"
	"gerai/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMockProductRepository_DecrementStock(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	err := repo.Create(&models.Product{ID: "p1", Name: "Laptop", Price: decimal.RequireFromString("10.00"), Stock: 5})
	assert.NoError(t, err)

	assert.NoError(t, repo.DecrementStock("p1", 3))
	product, err := repo.GetByID("p1")
	assert.NoError(t, err)
	assert.Equal(t, 2, product.Stock)

	// More than remains is a conflict and leaves stock alone.
	err = repo.DecrementStock("p1", 3)
	var conflict *repositories.StockConflictError
	assert.True(t, errors.As(err, &conflict))
	product, _ = repo.GetByID("p1")
	assert.Equal(t, 2, product.Stock)

	// Zero and negative quantities are refused rather than silently
	// increasing stock.
	assert.Error(t, repo.DecrementStock("p1", 0))
	assert.Error(t, repo.DecrementStock("p1", -4))
	product, _ = repo.GetByID("p1")
	assert.Equal(t, 2, product.Stock)

	assert.ErrorIs(t, repo.DecrementStock("missing", 1), repositories.ErrProductNotFound)
}
