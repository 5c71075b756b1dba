package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/webstore/catalog-api/pkg/product"
)

func newProductRepoWithMock(t *testing.T) (*ProductRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewProductRepository(db), mock, db
}

const selectProductsQ = `(?s)SELECT\s+product_id,\s*product_name,\s*description,\s*quantity,\s*price\s+FROM\s+products\s+ORDER\s+BY\s+product_id`
const selectProductQ = `(?s)SELECT\s+product_id,\s*product_name,\s*description,\s*quantity,\s*price\s+FROM\s+products\s+WHERE\s+product_id\s*=\s*\$1`
const insertProductQ = `(?s)INSERT\s+INTO\s+products\s*\(product_name,\s*description,\s*quantity,\s*price\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+product_id`
const updateProductQ = `(?s)UPDATE\s+products\s+SET\s+product_name\s*=\s*\$1,\s*description\s*=\s*\$2,\s*quantity\s*=\s*\$3,\s*price\s*=\s*\$4,\s*updated_at\s*=\s*now\(\)\s+WHERE\s+product_id\s*=\s*\$5`
const deleteProductQ = `(?s)DELETE\s+FROM\s+products\s+WHERE\s+product_id\s*=\s*\$1`

func TestProductList(t *testing.T) {
	repo, mock, db := newProductRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"product_id", "product_name", "description", "quantity", "price"}).
		AddRow(int64(1), "Widget", "d", 5, 9.99).
		AddRow(int64(2), "Gadget", "longer text", 0, 0.5)
	mock.ExpectQuery(selectProductsQ).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Widget" || got[1].ID != 2 {
		t.Fatalf("unexpected products: %+v", got)
	}
}

func TestProductList_EmptyIsNotNil(t *testing.T) {
	repo, mock, db := newProductRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectProductsQ).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "product_name", "description", "quantity", "price"}))

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
}

func TestProductGetByID_Found(t *testing.T) {
	repo, mock, db := newProductRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"product_id", "product_name", "description", "quantity", "price"}).
		AddRow(int64(3), "Widget", "d", 5, 9.99)
	mock.ExpectQuery(selectProductQ).WithArgs(int64(3)).WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.ID != 3 || got.Price != 9.99 {
		t.Fatalf("unexpected product: %+v", got)
	}
}

func TestProductGetByID_NotFound(t *testing.T) {
	repo, mock, db := newProductRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectProductQ).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, product.ErrNotFound) {
		t.Fatalf("want product.ErrNotFound, got %v", err)
	}
}

func TestProductCreate_ReturnsGeneratedID(t *testing.T) {
	repo, mock, db := newProductRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertProductQ).
		WithArgs("Widget", "d", 5, 9.99).
		WillReturnRows(sqlmock.NewRows([]string{"product_id"}).AddRow(int64(10)))

	got, err := repo.Create(context.Background(), product.Product{Name: "Widget", Description: "d", Quantity: 5, Price: 9.99})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 10 {
		t.Fatalf("want generated id 10, got %d", got.ID)
	}
}

func TestProductUpdate_Success(t *testing.T) {
	repo, mock, db := newProductRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(updateProductQ).
		WithArgs("Widget", "d", 5, 9.99, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), product.Product{ID: 3, Name: "Widget", Description: "d", Quantity: 5, Price: 9.99})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
}

func TestProductUpdate_ZeroRowsIsNotFound(t *testing.T) {
	repo, mock, db := newProductRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(updateProductQ).
		WithArgs("Widget", "d", 5, 9.99, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), product.Product{ID: 99, Name: "Widget", Description: "d", Quantity: 5, Price: 9.99})
	if !errors.Is(err, product.ErrNotFound) {
		t.Fatalf("want product.ErrNotFound, got %v", err)
	}
}

func TestProductDelete_Success(t *testing.T) {
	repo, mock, db := newProductRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteProductQ).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 3); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestProductDelete_ZeroRowsIsNotFound(t *testing.T) {
	repo, mock, db := newProductRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteProductQ).WithArgs(int64(99)).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	if !errors.Is(err, product.ErrNotFound) {
		t.Fatalf("want product.ErrNotFound, got %v", err)
	}
}
