package usecase

import (
	"context"
	"time"

	"github.com/Gunvolt24/marketplace_vendor/internal/domain"
	"github.com/Gunvolt24/marketplace_vendor/internal/ports"
	"github.com/Gunvolt24/marketplace_vendor/pkg/apperr"
	"github.com/Gunvolt24/marketplace_vendor/pkg/metrics"
)

// Проверка, что VendorService удовлетворяет интерфейсу StockLocationService.
var _ ports.StockLocationService = (*VendorService)(nil)

const stockLocationEntity = "stock_location"

// VendorService — прикладная логика вендорской поверхности:
// поиск продавца по актору, создание сущностей через воркфлоу платформы,
// запись связи владения и чтение через ScopedReader.
type VendorService struct {
	sellers ports.SellerRepository
	cache   ports.SellerCache
	links   ports.LinkRegistry
	flows   ports.PlatformWorkflows
	events  ports.EventPublisher
	reader  *ScopedReader
	log     ports.Logger
}

// NewVendorService — DI-конструктор.
func NewVendorService(
	sellers ports.SellerRepository,
	cache ports.SellerCache,
	links ports.LinkRegistry,
	flows ports.PlatformWorkflows,
	events ports.EventPublisher,
	reader *ScopedReader,
	log ports.Logger,
) *VendorService {
	return &VendorService{
		sellers: sellers,
		cache:   cache,
		links:   links,
		flows:   flows,
		events:  events,
		reader:  reader,
		log:     log,
	}
}

// SellerByActor — продавец по актору аутентификации: сначала кэш,
// при промахе — репозиторий с записью в кэш.
// Пустой actorID → Unauthenticated; нет привязки → NotFound.
func (s *VendorService) SellerByActor(ctx context.Context, actorID string) (*domain.Seller, error) {
	if actorID == "" {
		return nil, apperr.New(apperr.KindUnauthenticated, "auth actor id is missing")
	}

	if seller, found := s.cache.Get(ctx, actorID); found {
		return seller, nil
	}

	seller, err := s.sellers.GetByAuthActorID(ctx, actorID)
	if err != nil {
		s.log.Errorf(ctx, "sellers.GetByAuthActorID failed actor_id=%s err=%v", actorID, err)
		return nil, err
	}
	if seller == nil {
		return nil, apperr.New(apperr.KindNotFound, "seller for actor %s not found", actorID)
	}

	if setErr := s.cache.Set(ctx, seller); setErr != nil {
		s.log.Warnf(ctx, "seller cache.Set failed actor_id=%s err=%v", actorID, setErr)
	}
	return seller, nil
}

// CreateStockLocation — §create-поток:
//  1. продавец по актору;
//  2. воркфлоу платформы createStockLocations;
//  3. связь владения (строго после успеха воркфлоу);
//  4. чтение созданной локации через ScopedReader по новому id.
func (s *VendorService) CreateStockLocation(
	ctx context.Context,
	actorID string,
	input domain.CreateStockLocationInput,
	fields []string,
) (map[string]any, error) {
	seller, err := s.SellerByActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	locations, err := s.flows.CreateStockLocations(ctx, []domain.CreateStockLocationInput{input})
	if err != nil {
		metrics.WorkflowRuns.WithLabelValues("create_stock_locations", "failed").Inc()
		s.log.Errorf(ctx, "createStockLocations workflow failed seller_id=%s err=%v", seller.ID, err)
		return nil, err
	}
	metrics.WorkflowRuns.WithLabelValues("create_stock_locations", "ok").Inc()
	if len(locations) == 0 {
		return nil, apperr.New(apperr.KindInternal, "createStockLocations workflow returned no locations")
	}
	location := locations[0]

	if err := s.linkToSeller(ctx, seller.ID, domain.ModuleStockLocation, location.ID); err != nil {
		return nil, err
	}
	s.publish(ctx, domain.EventStockLocationCreated, seller.ID, domain.ModuleStockLocation, location.ID)

	rows, err := s.reader.ReadOwned(ctx, seller.ID, stockLocationEntity, fields, map[string]any{"id": location.ID})
	if err != nil {
		return nil, err
	}
	return rows[0], nil
}

// CreateFulfillmentSet — создание fulfillment set для локации.
// Перед вызовом воркфлоу проверяется, что локация принадлежит продавцу:
// воркфлоу платформы изоляцию вендоров не гарантирует.
func (s *VendorService) CreateFulfillmentSet(
	ctx context.Context,
	actorID, locationID string,
	input domain.CreateFulfillmentSetInput,
	fields []string,
) (map[string]any, error) {
	seller, err := s.SellerByActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if _, err := s.reader.ReadOwned(ctx, seller.ID, stockLocationEntity,
		[]string{"id"}, map[string]any{"id": locationID}); err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.New(apperr.KindForbidden,
				"stock location %s does not belong to seller %s", locationID, seller.ID)
		}
		return nil, err
	}

	set, err := s.flows.CreateLocationFulfillmentSet(ctx, domain.CreateLocationFulfillmentSetInput{
		LocationID:         locationID,
		FulfillmentSetData: input,
	})
	if err != nil {
		metrics.WorkflowRuns.WithLabelValues("create_location_fulfillment_set", "failed").Inc()
		s.log.Errorf(ctx, "createLocationFulfillmentSet workflow failed location_id=%s err=%v", locationID, err)
		return nil, err
	}
	metrics.WorkflowRuns.WithLabelValues("create_location_fulfillment_set", "ok").Inc()

	if err := s.linkToSeller(ctx, seller.ID, domain.ModuleFulfillment, set.ID); err != nil {
		return nil, err
	}
	s.publish(ctx, domain.EventFulfillmentSetCreated, seller.ID, domain.ModuleFulfillment, set.ID)

	// В ответе — локация (не fulfillment set), с полями вызывающего.
	rows, err := s.reader.ReadOwned(ctx, seller.ID, stockLocationEntity, fields, map[string]any{"id": locationID})
	if err != nil {
		return nil, err
	}
	return rows[0], nil
}

// ListStockLocations — локации продавца с фильтрами вызывающего.
func (s *VendorService) ListStockLocations(
	ctx context.Context,
	actorID string,
	fields []string,
	filters map[string]any,
) ([]map[string]any, error) {
	seller, err := s.SellerByActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return s.reader.ReadOwned(ctx, seller.ID, stockLocationEntity, fields, filters)
}

// linkToSeller — запись связи владения после успеха воркфлоу.
// Conflict означает, что связь уже есть — желаемое состояние достигнуто.
// Любая другая ошибка — Internal с id сущности: сущность создана,
// повторить нужно только линковку.
func (s *VendorService) linkToSeller(ctx context.Context, sellerID string, module domain.ModuleName, entityID string) error {
	err := s.links.Create(ctx, domain.OwnershipLink{
		SellerID: sellerID,
		Module:   module,
		EntityID: entityID,
	})
	if err == nil {
		metrics.LinkWrites.WithLabelValues(string(module), "created").Inc()
		return nil
	}
	if apperr.IsKind(err, apperr.KindConflict) {
		metrics.LinkWrites.WithLabelValues(string(module), "conflict").Inc()
		s.log.Warnf(ctx, "ownership link already exists module=%s entity_id=%s seller_id=%s", module, entityID, sellerID)
		return nil
	}
	metrics.LinkWrites.WithLabelValues(string(module), "failed").Inc()
	s.log.Errorf(ctx, "ownership link write failed module=%s entity_id=%s seller_id=%s err=%v", module, entityID, sellerID, err)
	return apperr.Wrap(apperr.KindInternal, err,
		"%s %s created but not linked to seller %s: retry linking", module, entityID, sellerID)
}

// publish — событие о созданной сущности; ошибка не проваливает запрос.
func (s *VendorService) publish(ctx context.Context, name, sellerID string, module domain.ModuleName, entityID string) {
	if s.events == nil {
		return
	}
	event := domain.VendorEvent{
		Name:       name,
		SellerID:   sellerID,
		Module:     module,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		metrics.EventsPublished.WithLabelValues(name, "failed").Inc()
		s.log.Warnf(ctx, "event publish failed name=%s entity_id=%s err=%v", name, entityID, err)
		return
	}
	metrics.EventsPublished.WithLabelValues(name, "ok").Inc()
}
