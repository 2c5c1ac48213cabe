package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yvonlcy/wanderlust-api/internal/domain"
)

// HotelFilter captures listing query parameters.
type HotelFilter struct {
	City *string
	Star *int
}

// HotelUpdate carries the fields of a partial hotel update. Nil fields are
// left untouched.
type HotelUpdate struct {
	Name        *string
	Star        *int
	Address     *string
	City        *string
	Country     *string
	Description *string
	Price       *float64
	Facilities  []string
}

// HotelRepository encapsulates hotel persistence.
type HotelRepository interface {
	Create(ctx context.Context, hotel *domain.Hotel) error
	Update(ctx context.Context, id string, update HotelUpdate) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Hotel, error)
	List(ctx context.Context, filter HotelFilter) ([]domain.Hotel, error)
}

type hotelRepository struct {
	pool *pgxpool.Pool
}

// NewHotelRepository instantiates repository.
func NewHotelRepository(pool *pgxpool.Pool) HotelRepository {
	return &hotelRepository{pool: pool}
}

const hotelColumns = `id, name, star, address, city, country, description, price, facilities, created_at, updated_at`

func (r *hotelRepository) Create(ctx context.Context, hotel *domain.Hotel) error {
	const query = `
        INSERT INTO hotels (name, star, address, city, country, description, price, facilities)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`

	if hotel.Facilities == nil {
		hotel.Facilities = []string{}
	}
	return r.pool.QueryRow(ctx, query,
		hotel.Name,
		hotel.Star,
		hotel.Address,
		hotel.City,
		hotel.Country,
		hotel.Description,
		hotel.Price,
		hotel.Facilities,
	).Scan(&hotel.ID, &hotel.CreatedAt, &hotel.UpdatedAt)
}

func (r *hotelRepository) Update(ctx context.Context, id string, update HotelUpdate) error {
	sets := make([]string, 0, 8)
	args := make([]any, 0, 9)

	appendSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}

	if update.Name != nil {
		appendSet("name", *update.Name)
	}
	if update.Star != nil {
		appendSet("star", *update.Star)
	}
	if update.Address != nil {
		appendSet("address", *update.Address)
	}
	if update.City != nil {
		appendSet("city", *update.City)
	}
	if update.Country != nil {
		appendSet("country", *update.Country)
	}
	if update.Description != nil {
		appendSet("description", *update.Description)
	}
	if update.Price != nil {
		appendSet("price", *update.Price)
	}
	if update.Facilities != nil {
		appendSet("facilities", update.Facilities)
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at=NOW()")
	args = append(args, id)
	query := fmt.Sprintf("UPDATE hotels SET %s WHERE id=$%d", strings.Join(sets, ", "), len(args))

	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *hotelRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM hotels WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *hotelRepository) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	const query = `SELECT ` + hotelColumns + ` FROM hotels WHERE id=$1`

	var hotel domain.Hotel
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.Star,
		&hotel.Address,
		&hotel.City,
		&hotel.Country,
		&hotel.Description,
		&hotel.Price,
		&hotel.Facilities,
		&hotel.CreatedAt,
		&hotel.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) List(ctx context.Context, filter HotelFilter) ([]domain.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels`
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if filter.City != nil {
		args = append(args, *filter.City)
		conditions = append(conditions, fmt.Sprintf("city=$%d", len(args)))
	}
	if filter.Star != nil {
		args = append(args, *filter.Star)
		conditions = append(conditions, fmt.Sprintf("star=$%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hotels := make([]domain.Hotel, 0)
	for rows.Next() {
		var hotel domain.Hotel
		if err := rows.Scan(
			&hotel.ID,
			&hotel.Name,
			&hotel.Star,
			&hotel.Address,
			&hotel.City,
			&hotel.Country,
			&hotel.Description,
			&hotel.Price,
			&hotel.Facilities,
			&hotel.CreatedAt,
			&hotel.UpdatedAt,
		); err != nil {
			return nil, err
		}
		hotels = append(hotels, hotel)
	}
	return hotels, rows.Err()
}
