//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/marketplace_vendor/internal/domain"
	pgrepo "github.com/Gunvolt24/marketplace_vendor/internal/repo/postgres"
	"github.com/Gunvolt24/marketplace_vendor/internal/testutil"
	"github.com/Gunvolt24/marketplace_vendor/pkg/apperr"
)

// 1) Создание продавца и поиск по актору
func TestRepo_SellerCreateAndGetByActor_TC(t *testing.T) {
	t.Parallel()

	// длинный контекст — только на подъём контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()

	// миграции
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	// короткий контекст — на сами БД-операции
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	repo := pgrepo.NewSellerRepository(pool)

	seller := testutil.MakeSeller()
	require.NoError(t, repo.Create(ctx, &seller))

	got, err := repo.GetByAuthActorID(ctx, seller.AuthActorID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, seller.ID, got.ID)
	require.Equal(t, seller.AuthActorID, got.AuthActorID)
	require.False(t, got.CreatedAt.IsZero())

	// неизвестный актор → (nil, nil)
	missing, err := repo.GetByAuthActorID(ctx, "actor-missing")
	require.NoError(t, err)
	require.Nil(t, missing)
}

// 2) Связь владения: запись, повтор → Conflict, владелец читается обратно
func TestRepo_LinkCreateAndConflict_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	sellers := pgrepo.NewSellerRepository(pool)
	links := pgrepo.NewLinkRepository(pool)

	seller := testutil.MakeSeller()
	require.NoError(t, sellers.Create(ctx, &seller))

	link := testutil.MakeLink(seller.ID, domain.ModuleStockLocation)
	require.NoError(t, links.Create(ctx, link))

	// повторная запись того же (module, entity_id) → Conflict
	err = links.Create(ctx, link)
	require.Error(t, err)
	require.True(t, apperr.IsKind(err, apperr.KindConflict))

	// и для другого продавца тоже Conflict: сущность уже привязана
	other := testutil.MakeSeller()
	require.NoError(t, sellers.Create(ctx, &other))
	stolen := link
	stolen.SellerID = other.ID
	err = links.Create(ctx, stolen)
	require.True(t, apperr.IsKind(err, apperr.KindConflict))

	// владелец остался прежним
	owner, err := links.GetSellerID(ctx, link.Module, link.EntityID)
	require.NoError(t, err)
	require.Equal(t, seller.ID, owner)
}

// 3) Владелец несуществующей сущности — пустая строка
func TestRepo_LinkOwnerMissing_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	links := pgrepo.NewLinkRepository(pool)

	owner, err := links.GetSellerID(ctx, domain.ModuleStockLocation, "loc-missing")
	require.NoError(t, err)
	require.Empty(t, owner)
}
