//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// username doubles as the local part of the email.
func CreateTestUser(t *testing.T, db DBLike, username, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, name, username, email, role) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (username) DO NOTHING",
		userID, "Test "+username, username, username+"@example.com", role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&userID)
	}

	return userID
}

func CreateTestPackage(t *testing.T, db DBLike, name string, basePriceCents int64) uuid.UUID {
	t.Helper()

	var packageID uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO packages (name, base_price_cents) VALUES ($1, $2) RETURNING id",
		name, basePriceCents).Scan(&packageID)
	require.NoError(t, err)

	return packageID
}

func CreateTestReservation(t *testing.T, db DBLike, userID uuid.UUID, venue string, createdAt time.Time) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO reservations (id, user_id, customer_full_name, customer_email, event_type, event_date, venue, guest_count, created_at, updated_at)
		VALUES ($1, $2, 'Test Customer', 'customer@example.com', 'Birthday', CURRENT_DATE + 30, $3, 50, $4, $4)`,
		reservationID, userID, venue, createdAt)
	require.NoError(t, err)

	return reservationID
}

func CreateTestPayment(t *testing.T, db DBLike, reservationID uuid.UUID, amountCents int64, createdAt time.Time) uuid.UUID {
	t.Helper()

	var paymentID uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO payments (reservation_id, amount_cents, method, status, created_at)
		VALUES ($1, $2, 'gcash', 'paid', $3) RETURNING id`,
		reservationID, amountCents, createdAt).Scan(&paymentID)
	require.NoError(t, err)

	return paymentID
}

func CountReservations(t *testing.T, db DBLike, userID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM reservations WHERE user_id = $1", userID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CustomizationFoods(t *testing.T, db DBLike, reservationID uuid.UUID) string {
	t.Helper()

	var foods string
	err := db.QueryRow(context.Background(),
		"SELECT selected_foods::text FROM package_customizations WHERE reservation_id = $1", reservationID).Scan(&foods)
	require.NoError(t, err)
	return foods
}

func UserExists(t *testing.T, db DBLike, userID uuid.UUID) bool {
	t.Helper()

	var exists bool
	err := db.QueryRow(context.Background(), "SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)", userID).Scan(&exists)
	require.NoError(t, err)
	return exists
}

func UserRole(t *testing.T, db DBLike, userID uuid.UUID) string {
	t.Helper()

	var role string
	err := db.QueryRow(context.Background(), "SELECT role FROM users WHERE id = $1", userID).Scan(&role)
	require.NoError(t, err)
	return role
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
