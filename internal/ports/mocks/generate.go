//go:generate mockgen -source=../order_repository.go -destination=./mock_order_repository.go -package=mocks
//go:generate mockgen -source=../order_cache.go      -destination=./mock_order_cache.go      -package=mocks
//go:generate mockgen -source=../order_validator.go  -destination=./mock_order_validator.go  -package=mocks
//go:generate mockgen -source=../event_publisher.go  -destination=./mock_event_publisher.go  -package=mocks
//go:generate mockgen -source=../token_store.go      -destination=./mock_token_store.go      -package=mocks
//go:generate mockgen -source=../identity_client.go  -destination=./mock_identity_client.go  -package=mocks
//go:generate mockgen -source=../order_service.go    -destination=./mock_order_service.go    -package=mocks

package mocks
