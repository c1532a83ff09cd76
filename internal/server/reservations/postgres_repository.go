package reservations

import (
	"context"
	"database/sql"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, reservation *Reservation) (*Reservation, error) {

	query :=
		`INSERT INTO reservas (id, user_id, fecha, hora, sala)
         VALUES ($1, $2, $3, $4, $5)
		 `

	_, err := r.db.ExecContext(ctx, query,
		reservation.ID, reservation.UserID, reservation.Date, reservation.Time, reservation.Room)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return reservation, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Reservation, error) {
	query :=
		`SELECT id, user_id, fecha, hora, sala FROM reservas
		 WHERE user_id = $1
		 ORDER BY fecha, hora
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]Reservation, 0)
	for rows.Next() {
		var res Reservation
		if err := rows.Scan(&res.ID, &res.UserID, &res.Date, &res.Time, &res.Room); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
