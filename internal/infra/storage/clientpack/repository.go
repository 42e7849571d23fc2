package clientpack

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/younesAM01/StayFit-BookingService/internal/domain"
	"github.com/younesAM01/StayFit-BookingService/pkg/dbmetrics"
	"github.com/younesAM01/StayFit-BookingService/pkg/psqlbuilder"
)

var packColumns = []string{
	"id",
	"client_id",
	"pack_definition_id",
	"total_sessions",
	"remaining_sessions",
	"is_active",
	"purchase_state",
	"purchase_date",
	"expires_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с пакетами занятий клиентов
// Пакеты создаёт платёжный коллаборатор; здесь только чтение и
// изменение остатка занятий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пакетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает пакет по ID
// Внутри транзакции строка блокируется FOR UPDATE - проверка пригодности
// и списание занятия сериализуются
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ClientPack, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(packColumns...).
		From("client_packs").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanPack(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPackNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan pack: %v", ErrScanRow, err)
	}

	return p, nil
}

// GetByClientID получает пакеты клиента
// При onlyActive возвращает только активные оплаченные пакеты
func (r *Repository) GetByClientID(ctx context.Context, clientID int64, onlyActive bool) ([]*domain.ClientPack, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(packColumns...).
		From("client_packs").
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("purchase_date DESC")

	if onlyActive {
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"is_active": true}).
			Where(squirrel.Eq{"purchase_state": string(domain.PurchaseCompleted)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	packs := make([]*domain.ClientPack, 0)
	for rows.Next() {
		p, err := scanPack(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByClientID - scan row: %v", ErrScanRow, err)
		}
		packs = append(packs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - rows error: %v", ErrScanRow, err)
	}

	return packs, nil
}

// Consume атомарно списывает одно занятие с пакета
// Единственный UPDATE с условием remaining_sessions > 0: два конкурирующих
// списания последнего занятия не могут пройти оба - проигравший получает
// ErrNoSessionsLeft. Никогда не выполняется как read-modify-write
func (r *Repository) Consume(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("client_packs").
		Set("remaining_sessions", squirrel.Expr("remaining_sessions - 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Gt{"remaining_sessions": 0}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Consume - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Consume - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Consume - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо пакета нет, либо занятия кончились - различаем для вызывающего
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return ErrNoSessionsLeft
	}

	return nil
}

// Restore возвращает одно занятие в пакет (компенсация при отмене сессии)
// Условие remaining_sessions < total_sessions защищает верхнюю границу
// инварианта 0 <= remaining_sessions <= total_sessions
func (r *Repository) Restore(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("client_packs").
		Set("remaining_sessions", squirrel.Expr("remaining_sessions + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("remaining_sessions < total_sessions")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Restore - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Restore - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Restore - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return ErrPackFull
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPack(row rowScanner) (*domain.ClientPack, error) {
	var p domain.ClientPack
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.ClientID,
		&p.PackDefinitionID,
		&p.TotalSessions,
		&p.RemainingSessions,
		&p.IsActive,
		&p.PurchaseState,
		&p.PurchaseDate,
		&p.ExpiresAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}
