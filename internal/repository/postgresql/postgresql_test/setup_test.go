package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/hrms-workforce/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-workforce/hrms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

// TestDatabaseSetup wraps a migrated connection to the integration database.
type TestDatabaseSetup struct {
	DB  *database.DB
	Loc *time.Location
}

// NewTestDatabase connects to TEST_DATABASE_URL, skipping the test when it is unset.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping PostgreSQL integration test")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, db.Migrate(ctx))

	setup := &TestDatabaseSetup{DB: db, Loc: time.FixedZone("WIB", 7*3600)}
	require.NoError(t, setup.TruncateAllTables(ctx))
	t.Cleanup(db.Close)
	return setup
}

// TruncateAllTables removes every row, children first.
func (s *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	for _, table := range []string{"leave_requests", "attendances", "employees"} {
		if _, err := s.DB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}
	return nil
}

func (s *TestDatabaseSetup) CreateEmployee(t *testing.T, code string, role employee.Role) employee.Employee {
	t.Helper()
	e, err := postgresql.NewEmployeeRepository(s.DB).Create(context.Background(), employee.Employee{
		EmployeeCode: code,
		Email:        code + "@example.com",
		PasswordHash: "x",
		Role:         role,
		FirstName:    "First " + code,
		LastName:     "Last",
		IsActive:     true,
	})
	require.NoError(t, err)
	return e
}
