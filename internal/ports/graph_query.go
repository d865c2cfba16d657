package ports

import "context"

// GraphConfig — параметры запроса к графовому read-слою платформы.
type GraphConfig struct {
	// Entity — имя точки входа (stock_location, order_set и т.д.).
	Entity string

	// Fields — запрашиваемые пути полей (включая seller.* для связей).
	Fields []string

	// Filters — предикаты; применяются на стороне сущности.
	Filters map[string]any

	// Variables — пагинация/сортировка, передаются непрозрачно.
	Variables map[string]any

	// ThrowIfKeyNotFound — read-слой обязан вернуть not found,
	// если фильтр по конкретному id не дал строк.
	ThrowIfKeyNotFound bool
}

// GraphQuery — графовый read-слой платформы.
// Строки возвращаются как есть: набор полей определяет запрос,
// read-слой может безусловно добавлять id-ключи.
type GraphQuery interface {
	Graph(ctx context.Context, cfg GraphConfig) ([]map[string]any, error)
}
