package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/marketplace_vendor/internal/domain"
	"github.com/Gunvolt24/marketplace_vendor/internal/ports"
	"github.com/Gunvolt24/marketplace_vendor/internal/ports/mocks"
	"github.com/Gunvolt24/marketplace_vendor/internal/usecase"
	"github.com/Gunvolt24/marketplace_vendor/pkg/apperr"
	"github.com/golang/mock/gomock"
)

const actorID = "actor-1"

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type vendorMocks struct {
	sellers *mocks.MockSellerRepository
	cache   *mocks.MockSellerCache
	links   *mocks.MockLinkRegistry
	flows   *mocks.MockPlatformWorkflows
	events  *mocks.MockEventPublisher
	query   *mocks.MockGraphQuery
}

func newVendorService(t *testing.T) (*usecase.VendorService, vendorMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := vendorMocks{
		sellers: mocks.NewMockSellerRepository(ctrl),
		cache:   mocks.NewMockSellerCache(ctrl),
		links:   mocks.NewMockLinkRegistry(ctrl),
		flows:   mocks.NewMockPlatformWorkflows(ctrl),
		events:  mocks.NewMockEventPublisher(ctrl),
		query:   mocks.NewMockGraphQuery(ctrl),
	}
	svc := usecase.NewVendorService(
		m.sellers, m.cache, m.links, m.flows, m.events,
		usecase.NewScopedReader(m.query), noopLogger{},
	)
	return svc, m
}

func testSeller() *domain.Seller {
	return &domain.Seller{ID: sellerID, Name: "Acme", AuthActorID: actorID}
}

func graphRow(entity string, inner map[string]any) []map[string]any {
	return []map[string]any{{
		"seller": map[string]any{"id": sellerID},
		entity:   inner,
	}}
}

func TestSellerByActor_CacheHit(t *testing.T) {
	svc, m := newVendorService(t)

	m.cache.EXPECT().Get(gomock.Any(), actorID).Return(testSeller(), true)
	m.sellers.EXPECT().GetByAuthActorID(gomock.Any(), gomock.Any()).Times(0)

	seller, err := svc.SellerByActor(context.Background(), actorID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seller.ID != sellerID {
		t.Fatalf("unexpected seller: %+v", seller)
	}
}

func TestSellerByActor_CacheMiss_FillsCache(t *testing.T) {
	svc, m := newVendorService(t)

	m.cache.EXPECT().Get(gomock.Any(), actorID).Return(nil, false)
	m.sellers.EXPECT().GetByAuthActorID(gomock.Any(), actorID).Return(testSeller(), nil)
	m.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)

	seller, err := svc.SellerByActor(context.Background(), actorID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seller.AuthActorID != actorID {
		t.Fatalf("unexpected seller: %+v", seller)
	}
}

func TestSellerByActor_EmptyActor_Unauthenticated(t *testing.T) {
	svc, _ := newVendorService(t)

	_, err := svc.SellerByActor(context.Background(), "")
	if !apperr.IsKind(err, apperr.KindUnauthenticated) {
		t.Fatalf("want Unauthenticated, got %v", err)
	}
}

func TestSellerByActor_NoBinding_NotFound(t *testing.T) {
	svc, m := newVendorService(t)

	m.cache.EXPECT().Get(gomock.Any(), actorID).Return(nil, false)
	m.sellers.EXPECT().GetByAuthActorID(gomock.Any(), actorID).Return(nil, nil)

	_, err := svc.SellerByActor(context.Background(), actorID)
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("want NotFound, got %v", err)
	}
}

func TestCreateStockLocation_HappyPath(t *testing.T) {
	svc, m := newVendorService(t)
	input := domain.CreateStockLocationInput{Name: "Warehouse A"}

	m.cache.EXPECT().Get(gomock.Any(), actorID).Return(testSeller(), true)

	// Порядок обязателен: воркфлоу → связь → событие → чтение.
	gomock.InOrder(
		m.flows.EXPECT().CreateStockLocations(gomock.Any(), []domain.CreateStockLocationInput{input}).
			Return([]domain.StockLocation{{ID: "loc-1", Name: "Warehouse A"}}, nil),
		m.links.EXPECT().Create(gomock.Any(), domain.OwnershipLink{
			SellerID: sellerID,
			Module:   domain.ModuleStockLocation,
			EntityID: "loc-1",
		}).Return(nil),
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil),
		m.query.EXPECT().Graph(gomock.Any(), gomock.Any()).
			Return(graphRow("stock_location", map[string]any{"id": "loc-1", "name": "Warehouse A"}), nil),
	)

	got, err := svc.CreateStockLocation(context.Background(), actorID, input, []string{"id", "name"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["id"] != "loc-1" || got["name"] != "Warehouse A" {
		t.Fatalf("unexpected record: %v", got)
	}
}

func TestCreateStockLocation_UnknownSeller_NoSideEffects(t *testing.T) {
	svc, m := newVendorService(t)

	m.cache.EXPECT().Get(gomock.Any(), actorID).Return(nil, false)
	m.sellers.EXPECT().GetByAuthActorID(gomock.Any(), actorID).Return(nil, nil)
	m.flows.EXPECT().CreateStockLocations(gomock.Any(), gomock.Any()).Times(0)
	m.links.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CreateStockLocation(context.Background(), actorID,
		domain.CreateStockLocationInput{Name: "Warehouse A"}, []string{"id"})
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("want NotFound, got %v", err)
	}
}

func TestCreateStockLocation_WorkflowFails_NoLink(t *testing.T) {
	svc, m := newVendorService(t)

	m.cache.EXPECT().Get(gomock.Any(), actorID).Return(testSeller(), true)
	m.flows.EXPECT().CreateStockLocations(gomock.Any(), gomock.Any()).Return(nil, errors.New("platform down"))
	m.links.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CreateStockLocation(context.Background(), actorID,
		domain.CreateStockLocationInput{Name: "Warehouse A"}, []string{"id"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestCreateStockLocation_LinkFailed_InternalWithEntityID(t *testing.T) {
	svc, m := newVendorService(t)

	m.cache.EXPECT().Get(gomock.Any(), actorID).Return(testSeller(), true)
	m.flows.EXPECT().CreateStockLocations(gomock.Any(), gomock.Any()).
		Return([]domain.StockLocation{{ID: "loc-1"}}, nil)
	m.links.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(apperr.New(apperr.KindUnavailable, "registry down"))
	m.query.EXPECT().Graph(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CreateStockLocation(context.Background(), actorID,
		domain.CreateStockLocationInput{Name: "Warehouse A"}, []string{"id"})
	if !apperr.IsKind(err, apperr.KindInternal) {
		t.Fatalf("want Internal, got %v", err)
	}
	// Диагностика должна содержать id сущности: создана, но не привязана.
	if !strings.Contains(err.Error(), "loc-1") {
		t.Fatalf("error must mention entity id: %v", err)
	}
}

func TestCreateStockLocation_LinkConflict_Tolerated(t *testing.T) {
	svc, m := newVendorService(t)

	m.cache.EXPECT().Get(gomock.Any(), actorID).Return(testSeller(), true)
	m.flows.EXPECT().CreateStockLocations(gomock.Any(), gomock.Any()).
		Return([]domain.StockLocation{{ID: "loc-1"}}, nil)
	m.links.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(apperr.New(apperr.KindConflict, "link exists"))
	m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	m.query.EXPECT().Graph(gomock.Any(), gomock.Any()).
		Return(graphRow("stock_location", map[string]any{"id": "loc-1"}), nil)

	got, err := svc.CreateStockLocation(context.Background(), actorID,
		domain.CreateStockLocationInput{Name: "Warehouse A"}, []string{"id"})
	if err != nil {
		t.Fatalf("conflict must not fail the request: %v", err)
	}
	if got["id"] != "loc-1" {
		t.Fatalf("unexpected record: %v", got)
	}
}

func TestCreateStockLocation_PublishFailure_NonFatal(t *testing.T) {
	svc, m := newVendorService(t)

	m.cache.EXPECT().Get(gomock.Any(), actorID).Return(testSeller(), true)
	m.flows.EXPECT().CreateStockLocations(gomock.Any(), gomock.Any()).
		Return([]domain.StockLocation{{ID: "loc-1"}}, nil)
	m.links.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	m.query.EXPECT().Graph(gomock.Any(), gomock.Any()).
		Return(graphRow("stock_location", map[string]any{"id": "loc-1"}), nil)

	if _, err := svc.CreateStockLocation(context.Background(), actorID,
		domain.CreateStockLocationInput{Name: "Warehouse A"}, []string{"id"}); err != nil {
		t.Fatalf("publish failure must not fail the request: %v", err)
	}
}

func TestCreateFulfillmentSet_ForeignLocation_Forbidden(t *testing.T) {
	svc, m := newVendorService(t)

	m.cache.EXPECT().Get(gomock.Any(), actorID).Return(testSeller(), true)
	// Проверка владения: локация не найдена в области продавца.
	m.query.EXPECT().Graph(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.flows.EXPECT().CreateLocationFulfillmentSet(gomock.Any(), gomock.Any()).Times(0)
	m.links.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CreateFulfillmentSet(context.Background(), actorID, "loc-foreign",
		domain.CreateFulfillmentSetInput{Name: "Pickup", Type: "pickup"}, []string{"id"})
	if !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("want Forbidden for foreign location, got %v", err)
	}
}

func TestCreateFulfillmentSet_HappyPath(t *testing.T) {
	svc, m := newVendorService(t)
	input := domain.CreateFulfillmentSetInput{Name: "Shipping", Type: "shipping"}

	m.cache.EXPECT().Get(gomock.Any(), actorID).Return(testSeller(), true)

	ownership := m.query.EXPECT().Graph(gomock.Any(), gomock.Any()).
		Return(graphRow("stock_location", map[string]any{"id": "loc-1"}), nil)
	gomock.InOrder(
		ownership,
		m.flows.EXPECT().CreateLocationFulfillmentSet(gomock.Any(), domain.CreateLocationFulfillmentSetInput{
			LocationID:         "loc-1",
			FulfillmentSetData: input,
		}).Return(domain.FulfillmentSet{ID: "fset-1", Name: "Shipping", Type: "shipping"}, nil),
		m.links.EXPECT().Create(gomock.Any(), domain.OwnershipLink{
			SellerID: sellerID,
			Module:   domain.ModuleFulfillment,
			EntityID: "fset-1",
		}).Return(nil),
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil),
		// Итоговое чтение возвращает локацию, не fulfillment set.
		m.query.EXPECT().Graph(gomock.Any(), gomock.Any()).
			Return(graphRow("stock_location", map[string]any{"id": "loc-1", "name": "Warehouse A"}), nil),
	)

	got, err := svc.CreateFulfillmentSet(context.Background(), actorID, "loc-1", input, []string{"id", "name"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["id"] != "loc-1" {
		t.Fatalf("response must be the location record: %v", got)
	}
}

func TestListStockLocations_ScopesToSeller(t *testing.T) {
	svc, m := newVendorService(t)

	m.cache.EXPECT().Get(gomock.Any(), actorID).Return(testSeller(), true)
	m.query.EXPECT().Graph(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cfg ports.GraphConfig) ([]map[string]any, error) {
			if cfg.Filters["seller.id"] != sellerID {
				t.Fatalf("list must be scoped to the seller: %v", cfg.Filters)
			}
			return graphRow("stock_location", map[string]any{"id": "loc-1"}), nil
		})

	rows, err := svc.ListStockLocations(context.Background(), actorID, []string{"id"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0]["id"] != "loc-1" {
		t.Fatalf("unexpected rows: %v", rows)
	}
}
