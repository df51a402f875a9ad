package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistica_cotizaciones/internal/domain/entities"
	"logistica_cotizaciones/internal/infrastructure/database"
	"logistica_cotizaciones/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const referenceConstraint = "cotizaciones_numero_cotizacion_key"

const selectQuote = `
	SELECT c.id, c.user_id, c.numero_cotizacion, c.estado,
	       c.origen, c.destino, c.tipo_servicio, c.peso, c.volumen, c.tipo_carga, c.descripcion,
	       c.monto_total, c.mensaje_admin, c.fecha_aceptacion, c.created_at, c.updated_at,
	       u.first_name, u.last_name, u.email, u.phone, u.company_name
	FROM cotizaciones c
	LEFT JOIN users u ON u.id = c.user_id`

const selectTransportUpdates = `
	SELECT id, cotizacion_id, estado, descripcion, ubicacion, created_at
	FROM transport_updates
	WHERE cotizacion_id = @quote_id
	ORDER BY created_at DESC, id DESC`

// QuotePostgresRepository persists quotes (cotizaciones) and their transport
// log in Postgres.
//
// Transitions go through Apply, which holds SELECT ... FOR UPDATE on the
// quote row for the whole decision so concurrent transitions serialize.
type QuotePostgresRepository struct {
	conn   database.PostgresPool
	tm     *database.TransactionManager
	logger *zap.Logger
}

var _ interfaces.IQuoteRepository = (*QuotePostgresRepository)(nil)

func NewQuotePostgresRepository(conn database.PostgresPool, tm *database.TransactionManager, logger *zap.Logger) *QuotePostgresRepository {
	return &QuotePostgresRepository{conn: conn, tm: tm, logger: logger}
}

func (r *QuotePostgresRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	const query = `
	INSERT INTO cotizaciones (
		id, user_id, numero_cotizacion, estado, origen, destino, tipo_servicio,
		peso, volumen, tipo_carga, descripcion, created_at, updated_at
	) VALUES (
		@id, @user_id, @numero_cotizacion, @estado, @origen, @destino, @tipo_servicio,
		@peso, @volumen, @tipo_carga, @descripcion, @created_at, @updated_at
	)`

	args := pgx.NamedArgs{
		"id":                q.ID,
		"user_id":           q.UserID,
		"numero_cotizacion": q.Reference,
		"estado":            string(q.Status),
		"origen":            q.Shipment.Origin,
		"destino":           q.Shipment.Destination,
		"tipo_servicio":     q.Shipment.ServiceType,
		"peso":              q.Shipment.Weight,
		"volumen":           q.Shipment.Volume,
		"tipo_carga":        q.Shipment.CargoType,
		"descripcion":       optional(q.Shipment.Description),
		"created_at":        q.CreatedAt,
		"updated_at":        q.UpdatedAt,
	}

	if _, err := r.conn.Exec(ctx, query, args); err != nil {
		if isUniqueViolation(err, referenceConstraint) {
			r.logger.Debug("quote repository reference taken", zap.String("reference", q.Reference))
			return entities.Quote{}, interfaces.ErrDuplicateReference
		}
		return entities.Quote{}, fmt.Errorf("failed to insert quote: %w", err)
	}
	return q, nil
}

func (r *QuotePostgresRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	q, err := scanQuote(r.conn.QueryRow(ctx, selectQuote+` WHERE c.id = @id`, pgx.NamedArgs{"id": id}))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, fmt.Errorf("failed to get quote: %w", err)
	}
	return q, nil
}

func (r *QuotePostgresRepository) ListByUserID(ctx context.Context, userID int64) ([]entities.Quote, error) {
	return r.list(ctx, selectQuote+` WHERE c.user_id = @user_id ORDER BY c.created_at DESC`, pgx.NamedArgs{"user_id": userID})
}

// List returns every quote, newest first. Search matches the reference or
// the owner's email, case-insensitively.
func (r *QuotePostgresRepository) List(ctx context.Context, filter entities.QuoteFilter) ([]entities.Quote, error) {
	query := selectQuote + `
	WHERE (@estado::text = '' OR c.estado = @estado::text)
	  AND (@search::text = ''
	       OR c.numero_cotizacion ILIKE '%' || @search::text || '%'
	       OR u.email ILIKE '%' || @search::text || '%')
	ORDER BY c.created_at DESC`

	return r.list(ctx, query, pgx.NamedArgs{
		"estado": string(filter.Status),
		"search": filter.Search,
	})
}

func (r *QuotePostgresRepository) ListTransportUpdates(ctx context.Context, quoteID string) ([]entities.TransportUpdate, error) {
	return listTransportUpdates(ctx, r.conn, quoteID)
}

func (r *QuotePostgresRepository) Apply(ctx context.Context, id string, fn interfaces.QuoteMutation) (entities.Quote, *entities.TransportUpdate, error) {
	var (
		result entities.Quote
		saved  *entities.TransportUpdate
	)

	err := r.tm.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		q, err := scanQuote(tx.QueryRow(ctx, selectQuote+` WHERE c.id = @id FOR UPDATE OF c`, pgx.NamedArgs{"id": id}))
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to lock quote: %w", err)
		}

		history, err := listTransportUpdates(ctx, tx, id)
		if err != nil {
			return err
		}

		entry, err := fn(&q, history)
		if err != nil {
			return err
		}

		if err := updateQuote(ctx, tx, q); err != nil {
			return err
		}
		if entry != nil {
			e, err := insertTransportUpdate(ctx, tx, *entry)
			if err != nil {
				return err
			}
			saved = &e
		}
		result = q
		return nil
	})
	if err != nil {
		return entities.Quote{}, nil, err
	}
	return result, saved, nil
}

func (r *QuotePostgresRepository) list(ctx context.Context, query string, args pgx.NamedArgs) ([]entities.Quote, error) {
	rows, err := r.conn.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer rows.Close()

	quotes := []entities.Quote{}
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quotes: %w", err)
	}
	return quotes, nil
}

func updateQuote(ctx context.Context, tx pgx.Tx, q entities.Quote) error {
	const query = `
	UPDATE cotizaciones SET
		estado = @estado,
		monto_total = @monto_total,
		mensaje_admin = @mensaje_admin,
		fecha_aceptacion = @fecha_aceptacion,
		updated_at = @updated_at
	WHERE id = @id`

	args := pgx.NamedArgs{
		"id":               q.ID,
		"estado":           string(q.Status),
		"monto_total":      q.QuotedAmount,
		"mensaje_admin":    q.AdminMessage,
		"fecha_aceptacion": q.AcceptedAt,
		"updated_at":       q.UpdatedAt,
	}
	if _, err := tx.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("failed to update quote: %w", err)
	}
	return nil
}

func insertTransportUpdate(ctx context.Context, tx pgx.Tx, u entities.TransportUpdate) (entities.TransportUpdate, error) {
	const query = `
	INSERT INTO transport_updates (cotizacion_id, estado, descripcion, ubicacion, created_at)
	VALUES (@quote_id, @estado, @descripcion, @ubicacion, @created_at)
	RETURNING id`

	args := pgx.NamedArgs{
		"quote_id":    u.QuoteID,
		"estado":      u.Label,
		"descripcion": u.Description,
		"ubicacion":   u.Location,
		"created_at":  u.CreatedAt,
	}
	if err := tx.QueryRow(ctx, query, args).Scan(&u.ID); err != nil {
		return entities.TransportUpdate{}, fmt.Errorf("failed to insert transport update: %w", err)
	}
	return u, nil
}

func listTransportUpdates(ctx context.Context, db querier, quoteID string) ([]entities.TransportUpdate, error) {
	rows, err := db.Query(ctx, selectTransportUpdates, pgx.NamedArgs{"quote_id": quoteID})
	if err != nil {
		return nil, fmt.Errorf("failed to list transport updates: %w", err)
	}
	defer rows.Close()

	updates := []entities.TransportUpdate{}
	for rows.Next() {
		var u entities.TransportUpdate
		if err := rows.Scan(&u.ID, &u.QuoteID, &u.Label, &u.Description, &u.Location, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transport update: %w", err)
		}
		updates = append(updates, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transport updates: %w", err)
	}
	return updates, nil
}

func scanQuote(row pgx.Row) (entities.Quote, error) {
	var (
		q           entities.Quote
		status      string
		description *string
		acceptedAt  *time.Time
		firstName   *string
		lastName    *string
		email       *string
		phone       *string
		company     *string
	)
	err := row.Scan(
		&q.ID, &q.UserID, &q.Reference, &status,
		&q.Shipment.Origin, &q.Shipment.Destination, &q.Shipment.ServiceType,
		&q.Shipment.Weight, &q.Shipment.Volume, &q.Shipment.CargoType, &description,
		&q.QuotedAmount, &q.AdminMessage, &acceptedAt, &q.CreatedAt, &q.UpdatedAt,
		&firstName, &lastName, &email, &phone, &company,
	)
	if err != nil {
		return entities.Quote{}, err
	}

	q.Status = entities.QuoteStatus(status)
	q.Shipment.Description = nullableString(description)
	if acceptedAt != nil {
		at := acceptedAt.UTC()
		q.AcceptedAt = &at
	}
	q.CreatedAt = q.CreatedAt.UTC()
	q.UpdatedAt = q.UpdatedAt.UTC()
	if email != nil {
		q.Client = &entities.Client{
			FirstName:   nullableString(firstName),
			LastName:    nullableString(lastName),
			Email:       *email,
			Phone:       nullableString(phone),
			CompanyName: nullableString(company),
		}
	}
	return q, nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
