package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/marketplace_vendor/internal/domain"
	"github.com/Gunvolt24/marketplace_vendor/internal/ports"
	"github.com/Gunvolt24/marketplace_vendor/pkg/metrics"
)

// Проверка, что SellerCache удовлетворяет интерфейсу SellerCache.
var _ ports.SellerCache = (*SellerCache)(nil)

type entry struct {
	actorID   string
	seller    *domain.Seller
	expiresAt time.Time
}

// SellerCache — LRU-кэш продавцов с TTL, ключ — actor_id.
// Продавец ищется на каждом запросе поверхности, привязка к актору
// меняется редко, поэтому кэш скользящий: TTL обновляется при попадании.
type SellerCache struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// NewSellerCache - конструктор SellerCache.
func NewSellerCache(capacity int, ttl time.Duration) *SellerCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &SellerCache{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Get — продавец по актору; при попадании запись обновляет позицию и TTL.
func (c *SellerCache) Get(_ context.Context, actorID string) (*domain.Seller, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[actorID]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneSeller(ent.seller), true
}

// Set — сохранить/обновить продавца; ключ берётся из AuthActorID.
func (c *SellerCache) Set(_ context.Context, seller *domain.Seller) error {
	if seller == nil || seller.AuthActorID == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[seller.AuthActorID]; ok {
		ent := elem.Value.(*entry)
		ent.seller = cloneSeller(seller)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		actorID:   seller.AuthActorID,
		seller:    cloneSeller(seller),
		expiresAt: c.expiryFrom(now),
	})
	c.index[seller.AuthActorID] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// ------вспомогательные функции------

// evictLRU — удаляет наименее используемый элемент.
func (c *SellerCache) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *SellerCache) removeElement(elem *list.Element) {
	ent := elem.Value.(*entry)
	delete(c.index, ent.actorID)
	c.ll.Remove(elem)
}

// isExpired — проверяет истечение TTL.
func (c *SellerCache) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

// expiryFrom — вычисляет момент истечения для текущего времени.
func (c *SellerCache) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — удаляет элементы с истекшим TTL из хвоста до первого актуального.
func (c *SellerCache) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent := back.Value.(*entry)
		if now.After(ent.expiresAt) {
			c.removeElement(back)
			metrics.CacheOps.WithLabelValues("expired").Inc()
			metrics.CacheSize.Set(float64(len(c.index)))
			continue
		}
		return
	}
}

// cloneSeller — возвращает копию продавца, чтобы внешние изменения
// не отражались на данных внутри кэша.
func cloneSeller(seller *domain.Seller) *domain.Seller {
	if seller == nil {
		return nil
	}
	clonedSeller := *seller
	return &clonedSeller
}
