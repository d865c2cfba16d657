//go:generate mockgen -source=../seller.go          -destination=./mock_seller.go          -package=mocks
//go:generate mockgen -source=../link_registry.go   -destination=./mock_link_registry.go   -package=mocks
//go:generate mockgen -source=../graph_query.go     -destination=./mock_graph_query.go     -package=mocks
//go:generate mockgen -source=../workflows.go       -destination=./mock_workflows.go       -package=mocks
//go:generate mockgen -source=../event_publisher.go -destination=./mock_event_publisher.go -package=mocks
//go:generate mockgen -source=../vendor_services.go -destination=./mock_vendor_services.go -package=mocks

package mocks
