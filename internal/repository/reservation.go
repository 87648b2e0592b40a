package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/antonvlk/CourtBooker/internal/domain"
	"github.com/antonvlk/CourtBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// courtLockKey serializes all commit transactions for the single shared
// court. Two concurrent writers both pass the pre-check; the lock makes
// the in-transaction re-check see the first writer's committed rows.
const courtLockKey int64 = 0x636F757274 // "court"

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation, participants []*domain.Participant, guard ports.CommitGuard) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin tx: %v", domain.ErrStoreUnavailable, err)
	}
	defer tx.Rollback()

	if err = lockCourt(ctx, tx); err != nil {
		return err
	}

	if err = recheckConflict(ctx, tx, res.StartAt, res.EndAt, ""); err != nil {
		return err
	}
	if err = recheckQuotas(ctx, tx, res.CreatedByID, guard, ""); err != nil {
		return err
	}

	query := `INSERT INTO reservations (id, start_at, end_at, created_by, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	if _, err = tx.ExecContext(ctx, query, res.ID, res.StartAt, res.EndAt, res.CreatedByID, res.CreatedAt); err != nil {
		if isOverlapViolation(err) {
			return domain.ErrSlotConflict
		}
		return fmt.Errorf("%w: insert reservation: %v", domain.ErrStoreUnavailable, err)
	}

	if err = insertParticipants(ctx, tx, participants); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ReservationRepository) Move(ctx context.Context, id string, newStart, newEnd time.Time, participants []*domain.Participant, guard ports.CommitGuard) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin tx: %v", domain.ErrStoreUnavailable, err)
	}
	defer tx.Rollback()

	if err = lockCourt(ctx, tx); err != nil {
		return err
	}

	var createdBy string
	row := tx.QueryRowContext(ctx, `SELECT created_by FROM reservations WHERE id = $1 FOR UPDATE`, id)
	if err = row.Scan(&createdBy); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReservationNotFound
		}
		return fmt.Errorf("%w: lock reservation: %v", domain.ErrStoreUnavailable, err)
	}

	if err = recheckConflict(ctx, tx, newStart, newEnd, id); err != nil {
		return err
	}
	if err = recheckQuotas(ctx, tx, createdBy, guard, id); err != nil {
		return err
	}

	// Participant rows are replaced wholesale, not diffed.
	if _, err = tx.ExecContext(ctx, `DELETE FROM participants WHERE reservation_id = $1`, id); err != nil {
		return fmt.Errorf("%w: clear participants: %v", domain.ErrStoreUnavailable, err)
	}
	if err = insertParticipants(ctx, tx, participants); err != nil {
		return err
	}

	query := `UPDATE reservations SET start_at = $2, end_at = $3 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, query, id, newStart, newEnd); err != nil {
		if isOverlapViolation(err) {
			return domain.ErrSlotConflict
		}
		return fmt.Errorf("%w: update interval: %v", domain.ErrStoreUnavailable, err)
	}

	return tx.Commit()
}

func (r *ReservationRepository) ReplaceParticipants(ctx context.Context, reservationID string, participants []*domain.Participant) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin tx: %v", domain.ErrStoreUnavailable, err)
	}
	defer tx.Rollback()

	var exists bool
	row := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM reservations WHERE id = $1 FOR UPDATE)`, reservationID)
	if err = row.Scan(&exists); err != nil {
		return fmt.Errorf("%w: check reservation: %v", domain.ErrStoreUnavailable, err)
	}
	if !exists {
		return domain.ErrReservationNotFound
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM participants WHERE reservation_id = $1`, reservationID); err != nil {
		return fmt.Errorf("%w: clear participants: %v", domain.ErrStoreUnavailable, err)
	}
	if err = insertParticipants(ctx, tx, participants); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	// Participants go with the reservation via ON DELETE CASCADE.
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: delete reservation: %v", domain.ErrStoreUnavailable, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: delete rows affected: %v", domain.ErrStoreUnavailable, err)
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT id, start_at, end_at, created_by, created_at
			  FROM reservations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("%w: get reservation: %v", domain.ErrStoreUnavailable, err)
	}

	var res domain.Reservation
	if err = row.Scan(&res.ID, &res.StartAt, &res.EndAt, &res.CreatedByID, &res.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: scan reservation: %v", domain.ErrStoreUnavailable, err)
	}

	return &res, nil
}

func (r *ReservationRepository) FindOverlapping(ctx context.Context, start, end time.Time, excludeID string) (*domain.Reservation, error) {
	// Half-open overlap as a single compound predicate. A same-day
	// approximation would miss reservations spanning midnight.
	query := `SELECT id, start_at, end_at, created_by, created_at
			  FROM reservations
			  WHERE start_at < $2 AND end_at > $1
			    AND ($3 = '' OR id::text <> $3)
			  ORDER BY start_at
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, start, end, excludeID)
	if err != nil {
		return nil, fmt.Errorf("%w: find overlapping: %v", domain.ErrStoreUnavailable, err)
	}

	var res domain.Reservation
	if err = row.Scan(&res.ID, &res.StartAt, &res.EndAt, &res.CreatedByID, &res.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: scan overlapping: %v", domain.ErrStoreUnavailable, err)
	}

	return &res, nil
}

func (r *ReservationRepository) CountByCreatorBetween(ctx context.Context, userID string, from, to time.Time, excludeID string) (int, error) {
	query := `SELECT COUNT(*) FROM reservations
			  WHERE created_by = $1 AND start_at BETWEEN $2 AND $3
			    AND ($4 = '' OR id::text <> $4)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID, from, to, excludeID)
	if err != nil {
		return 0, fmt.Errorf("%w: count by creator: %v", domain.ErrStoreUnavailable, err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: scan count: %v", domain.ErrStoreUnavailable, err)
	}

	return count, nil
}

func (r *ReservationRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error) {
	query := `SELECT id, start_at, end_at, created_by, created_at
			  FROM reservations
			  WHERE start_at < $2 AND end_at > $1
			  ORDER BY start_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: list reservations: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		var rec domain.Reservation
		if err = rows.Scan(&rec.ID, &rec.StartAt, &rec.EndAt, &rec.CreatedByID, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan reservation: %v", domain.ErrStoreUnavailable, err)
		}
		res = append(res, &rec)
	}

	return res, rows.Err()
}

func (r *ReservationRepository) FindActiveAt(ctx context.Context, t time.Time) (*domain.Reservation, error) {
	query := `SELECT id, start_at, end_at, created_by, created_at
			  FROM reservations
			  WHERE start_at <= $1 AND end_at > $1
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, t)
	if err != nil {
		return nil, fmt.Errorf("%w: find active: %v", domain.ErrStoreUnavailable, err)
	}

	var res domain.Reservation
	if err = row.Scan(&res.ID, &res.StartAt, &res.EndAt, &res.CreatedByID, &res.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: scan active: %v", domain.ErrStoreUnavailable, err)
	}

	return &res, nil
}

func (r *ReservationRepository) ListParticipants(ctx context.Context, reservationID string) ([]*domain.Participant, error) {
	query := `SELECT id, reservation_id, user_id, guest_name, ord
			  FROM participants
			  WHERE reservation_id = $1
			  ORDER BY ord`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, reservationID)
	if err != nil {
		return nil, fmt.Errorf("%w: list participants: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var res []*domain.Participant
	for rows.Next() {
		var (
			p         domain.Participant
			userID    sql.NullString
			guestName sql.NullString
		)
		if err = rows.Scan(&p.ID, &p.ReservationID, &userID, &guestName, &p.Order); err != nil {
			return nil, fmt.Errorf("%w: scan participant: %v", domain.ErrStoreUnavailable, err)
		}
		if userID.Valid {
			p.Occupant = domain.RegisteredOccupant(userID.String)
		} else {
			p.Occupant = domain.GuestOccupant(guestName.String)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}

func (r *ReservationRepository) ParticipantNames(ctx context.Context, reservationID string) ([]string, error) {
	query := `SELECT COALESCE(u.display_name, p.guest_name)
			  FROM participants p
			  LEFT JOIN users u ON u.id = p.user_id
			  WHERE p.reservation_id = $1
			  ORDER BY p.ord`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, reservationID)
	if err != nil {
		return nil, fmt.Errorf("%w: participant names: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: scan name: %v", domain.ErrStoreUnavailable, err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

func lockCourt(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, courtLockKey); err != nil {
		return fmt.Errorf("%w: acquire court lock: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func recheckConflict(ctx context.Context, tx *sql.Tx, start, end time.Time, excludeID string) error {
	query := `SELECT EXISTS (
				SELECT 1 FROM reservations
				WHERE start_at < $2 AND end_at > $1
				  AND ($3 = '' OR id::text <> $3))`

	var conflict bool
	if err := tx.QueryRowContext(ctx, query, start, end, excludeID).Scan(&conflict); err != nil {
		return fmt.Errorf("%w: recheck conflict: %v", domain.ErrStoreUnavailable, err)
	}
	if conflict {
		return domain.ErrSlotConflict
	}
	return nil
}

func recheckQuotas(ctx context.Context, tx *sql.Tx, userID string, guard ports.CommitGuard, excludeID string) error {
	query := `SELECT COUNT(*) FROM reservations
			  WHERE created_by = $1 AND start_at BETWEEN $2 AND $3
			    AND ($4 = '' OR id::text <> $4)`

	var daily int
	if err := tx.QueryRowContext(ctx, query, userID, guard.DayStart, guard.DayEnd, excludeID).Scan(&daily); err != nil {
		return fmt.Errorf("%w: recheck daily quota: %v", domain.ErrStoreUnavailable, err)
	}
	if daily >= domain.MaxReservationsPerDay {
		return domain.ErrDailyLimitExceeded
	}

	var weekly int
	if err := tx.QueryRowContext(ctx, query, userID, guard.WeekStart, guard.WeekEnd, excludeID).Scan(&weekly); err != nil {
		return fmt.Errorf("%w: recheck weekly quota: %v", domain.ErrStoreUnavailable, err)
	}
	if weekly >= domain.MaxReservationsPerWeek {
		return domain.ErrWeeklyLimitExceeded
	}

	return nil
}

func insertParticipants(ctx context.Context, tx *sql.Tx, participants []*domain.Participant) error {
	query := `INSERT INTO participants (id, reservation_id, user_id, guest_name, ord)
			  VALUES ($1, $2, $3, $4, $5)`

	for _, p := range participants {
		var userID, guestName sql.NullString
		if id, ok := p.Occupant.UserID(); ok {
			userID = sql.NullString{String: id, Valid: true}
		}
		if name, ok := p.Occupant.GuestName(); ok {
			guestName = sql.NullString{String: name, Valid: true}
		}

		if _, err := tx.ExecContext(ctx, query, p.ID, p.ReservationID, userID, guestName, p.Order); err != nil {
			return fmt.Errorf("%w: insert participant: %v", domain.ErrStoreUnavailable, err)
		}
	}

	return nil
}

func isOverlapViolation(err error) bool {
	var pgErr *pq.Error
	// 23P01 exclusion_violation comes from the tstzrange overlap
	// constraint, the storage-level backstop behind the re-check.
	return errors.As(err, &pgErr) && (pgErr.Code == "23P01" || pgErr.Code == "23505")
}
