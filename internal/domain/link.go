package domain

// ModuleName — имя модуля платформы, в котором живёт сущность.
type ModuleName string

const (
	ModuleSeller        ModuleName = "seller"
	ModuleStockLocation ModuleName = "stock_location"
	ModuleFulfillment   ModuleName = "fulfillment"
)

// OwnershipLink — кортеж владения (seller_id, module, entity_id) в реестре связей.
// Уникальность составная: (module, entity_id) — одна сущность принадлежит одному продавцу.
type OwnershipLink struct {
	SellerID string     `json:"seller_id"`
	Module   ModuleName `json:"module"`
	EntityID string     `json:"entity_id"`
}
